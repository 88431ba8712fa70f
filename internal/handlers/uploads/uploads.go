package uploads

import (
	"log"

	"github.com/gin-gonic/gin"

	"velora_back_office/internal/response"
	"velora_back_office/internal/services"
)

// UploadFiles reçoit les fichiers du dashboard (champ "files") et renvoie
// la liste ordonnée des URLs. C'est la première étape du chemin de mise à
// jour produit : upload d'abord, fusion des URLs côté client, PATCH ensuite.
func UploadFiles(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.WriteBadRequest(c, "Formulaire multipart invalide")
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		response.WriteBadRequest(c, "Aucun fichier reçu")
		return
	}

	urls, err := services.UploadFiles(c.Request.Context(), files)
	if err != nil {
		log.Printf("❌ Erreur upload fichiers: %v", err)
		response.WriteServerError(c, "Erreur upload des fichiers")
		return
	}

	response.WriteOK(c, urls)
}
