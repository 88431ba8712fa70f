package inventory

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"velora_back_office/internal/database"
	"velora_back_office/internal/models"
	"velora_back_office/internal/response"
)

// GetSoftInventory renvoie l'instantané de stock secondaire d'une marque
// pour un jour, avec filtre optionnel par sku. Instantané possiblement
// périmé : il ne sert qu'à flaguer les lignes livrables.
func GetSoftInventory(c *gin.Context) {
	brandUUID, err := gocql.ParseUUID(c.Query("brand_id"))
	if err != nil {
		response.WriteBadRequest(c, "Paramètre 'brand_id' invalide")
		return
	}

	day := c.Query("date")
	if _, err := time.Parse("2006-01-02", day); err != nil {
		response.WriteBadRequest(c, "Paramètre 'date' attendu au format YYYY-MM-DD")
		return
	}

	skuFilter := c.Query("sku")

	session, err := database.GetOrdersSession()
	if err != nil {
		response.WriteServerError(c, "Erreur connexion base de données")
		return
	}

	iter := session.Query(`SELECT sku, size, color, quantity
		FROM soft_inventory_by_brand_day WHERE brand_id = ? AND day = ?`, brandUUID, day).Iter()

	items := []models.SoftInventoryItem{}
	var inv models.SoftInventoryItem

	for iter.Scan(&inv.SKU, &inv.Size, &inv.Color, &inv.Quantity) {
		if skuFilter == "" || inv.SKU == skuFilter {
			items = append(items, inv)
		}
		inv = models.SoftInventoryItem{}
	}

	if err := iter.Close(); err != nil {
		log.Printf("❌ Erreur lecture soft inventory: %v", err)
		response.WriteServerError(c, "Erreur lecture soft inventory")
		return
	}

	response.WriteOK(c, items)
}
