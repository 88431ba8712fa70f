package user

import (
	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"velora_back_office/internal/cache"
	"velora_back_office/internal/response"
)

// GetUser renvoie la fiche client (lecture seule côté dashboard)
func GetUser(c *gin.Context) {
	userID := c.Param("id")

	if _, err := gocql.ParseUUID(userID); err != nil {
		response.WriteBadRequest(c, "ID utilisateur invalide")
		return
	}

	u, err := cache.GetUserFromCache(userID)
	if err != nil {
		response.WriteNotFound(c, "Utilisateur introuvable")
		return
	}

	response.WriteOK(c, u)
}
