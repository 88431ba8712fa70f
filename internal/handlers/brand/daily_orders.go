package brand

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"velora_back_office/internal/cache"
	"velora_back_office/internal/database"
	"velora_back_office/internal/models"
	"velora_back_office/internal/notify"
	"velora_back_office/internal/response"
	"velora_back_office/internal/services"
	"velora_back_office/internal/stock"
)

// GetDailyOrders renvoie les lignes de commande d'une marque pour un jour,
// chacune annotée in_stock via le soft inventory du même jour. Pas de
// pagination : la file est bornée à une marque/jour.
func GetDailyOrders(c *gin.Context) {
	brandUUID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		response.WriteBadRequest(c, "ID de marque invalide")
		return
	}

	day := c.Query("date")
	if _, err := time.Parse("2006-01-02", day); err != nil {
		response.WriteBadRequest(c, "Paramètre 'date' attendu au format YYYY-MM-DD")
		return
	}

	items, err := fetchDailyOrders(brandUUID, day)
	if err != nil {
		log.Printf("❌ Erreur lecture commandes journalières: %v", err)
		response.WriteServerError(c, "Erreur lecture commandes journalières")
		return
	}

	// Le soft inventory est non critique : s'il est indisponible, tout est
	// considéré en rupture et la page reste utilisable.
	snapshot, err := fetchSoftInventory(brandUUID, day)
	if err != nil {
		log.Printf("⚠️ Soft inventory indisponible, tout passe en rupture: %v", err)
		snapshot = nil
	}

	stock.AnnotateStock(items, snapshot)

	if items == nil {
		items = []models.DailyOrderItem{}
	}
	response.WriteOK(c, items)
}

type submitInput struct {
	Date    string   `json:"date" binding:"required"`
	ItemIDs []string `json:"item_ids"`
}

// SubmitDailyOrders soumet au réassort les lignes sélectionnées. Seules les
// lignes en rupture (et pas déjà soumises) sont éligibles ; une sélection
// vide est rejetée sans aucune écriture.
func SubmitDailyOrders(c *gin.Context) {
	brandUUID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		response.WriteBadRequest(c, "ID de marque invalide")
		return
	}

	var input submitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.WriteBadRequest(c, "Données invalides")
		return
	}

	if len(input.ItemIDs) == 0 {
		response.WriteBadRequest(c, "Aucune commande sélectionnée")
		return
	}

	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		response.WriteBadRequest(c, "Paramètre 'date' attendu au format YYYY-MM-DD")
		return
	}

	items, err := fetchDailyOrders(brandUUID, input.Date)
	if err != nil {
		log.Printf("❌ Erreur lecture commandes journalières: %v", err)
		response.WriteServerError(c, "Erreur lecture commandes journalières")
		return
	}

	snapshot, err := fetchSoftInventory(brandUUID, input.Date)
	if err != nil {
		log.Printf("⚠️ Soft inventory indisponible, tout passe en rupture: %v", err)
		snapshot = nil
	}

	eligible := stock.EligibleIDs(items, snapshot)

	byID := make(map[string]models.DailyOrderItem, len(items))
	for _, it := range items {
		byID[it.ID.String()] = it
	}

	var submitted []models.DailyOrderItem
	for _, id := range input.ItemIDs {
		it, exists := byID[id]
		if !exists {
			response.WriteBadRequest(c, "Ligne inconnue: "+id)
			return
		}
		if !eligible[id] {
			// Une ligne en stock (ou déjà soumise) n'est jamais soumissible
			response.WriteBadRequest(c, "Ligne non éligible (en stock ou déjà soumise): "+it.SKU)
			return
		}
		submitted = append(submitted, it)
	}

	session, err := database.GetOrdersSession()
	if err != nil {
		response.WriteServerError(c, "Erreur connexion base de données")
		return
	}

	for _, it := range submitted {
		if err := session.Query(`UPDATE daily_orders_by_brand_day SET submitted = true
			WHERE brand_id = ? AND day = ? AND item_id = ?`,
			brandUUID, input.Date, it.ID).Exec(); err != nil {
			log.Printf("❌ Erreur soumission ligne %s: %v", it.ID, err)
			response.WriteServerError(c, "Erreur lors de la soumission")
			return
		}
	}

	if notifier != nil {
		if _, err := notifier.Push(context.Background(), notify.LevelSuccess,
			"Commandes du "+input.Date+" soumises au réassort"); err != nil {
			log.Printf("⚠️ Erreur notification soumission: %v", err)
		}
	}

	// Récapitulatif mail à la marque, jamais bloquant
	go func(brandID gocql.UUID, day string, items []models.DailyOrderItem) {
		brand, err := cache.GetBrandFromCache(brandID)
		if err != nil || brand.ContactEmail == "" {
			return
		}
		if err := services.SendDailyOrdersRecap(brand.ContactEmail, brand.Name, day, items); err != nil {
			log.Printf("⚠️ Erreur envoi récapitulatif: %v", err)
		}
	}(brandUUID, input.Date, submitted)

	response.WriteOK(c, gin.H{"submitted": len(submitted)})
}

// fetchDailyOrders lit la file d'un jour pour une marque
func fetchDailyOrders(brandID gocql.UUID, day string) ([]models.DailyOrderItem, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT item_id, sku, color, size, quantity, submitted
		FROM daily_orders_by_brand_day WHERE brand_id = ? AND day = ?`, brandID, day).Iter()

	var items []models.DailyOrderItem
	var it models.DailyOrderItem

	for iter.Scan(&it.ID, &it.SKU, &it.Color, &it.Size, &it.Quantity, &it.Submitted) {
		it.BrandID = brandID
		it.Day = day
		items = append(items, it)
		it = models.DailyOrderItem{}
	}

	return items, iter.Close()
}

// fetchSoftInventory lit l'instantané de stock du jour
func fetchSoftInventory(brandID gocql.UUID, day string) ([]models.SoftInventoryItem, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT sku, size, color, quantity
		FROM soft_inventory_by_brand_day WHERE brand_id = ? AND day = ?`, brandID, day).Iter()

	var snapshot []models.SoftInventoryItem
	var inv models.SoftInventoryItem

	for iter.Scan(&inv.SKU, &inv.Size, &inv.Color, &inv.Quantity) {
		snapshot = append(snapshot, inv)
		inv = models.SoftInventoryItem{}
	}

	return snapshot, iter.Close()
}
