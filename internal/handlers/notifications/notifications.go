package notifications

import (
	"log"

	"github.com/gin-gonic/gin"

	"velora_back_office/internal/notify"
	"velora_back_office/internal/response"
)

var service *notify.Service

func Init(n *notify.Service) {
	service = n
}

// ListNotifications renvoie la file de notifications du back-office
func ListNotifications(c *gin.Context) {
	items, err := service.List(c.Request.Context())
	if err != nil {
		log.Printf("❌ Erreur lecture notifications: %v", err)
		response.WriteServerError(c, "Erreur lecture notifications")
		return
	}
	response.WriteOK(c, items)
}

// DismissNotification retire une notification de la file
func DismissNotification(c *gin.Context) {
	id := c.Param("id")

	if err := service.Dismiss(c.Request.Context(), id); err != nil {
		log.Printf("❌ Erreur dismiss notification: %v", err)
		response.WriteServerError(c, "Erreur suppression notification")
		return
	}
	response.WriteOK(c, gin.H{"id": id})
}
