package stock

import (
	"strings"

	"velora_back_office/internal/models"
)

// CheckSoftStock indique si une ligne de commande est couverte par
// l'instantané de soft inventory : correspondance exacte sur sku et size,
// insensible à la casse sur color quand la ligne en précise une, et
// quantité strictement positive. Aucune correspondance → rupture de stock.
//
// L'instantané est borné à une marque/jour, on le parcourt tel quel sans
// l'indexer.
func CheckSoftStock(item models.DailyOrderItem, snapshot []models.SoftInventoryItem) bool {
	for _, inv := range snapshot {
		if inv.SKU != item.SKU || inv.Size != item.Size {
			continue
		}
		if item.Color != "" && !strings.EqualFold(inv.Color, item.Color) {
			continue
		}
		if inv.Quantity > 0 {
			return true
		}
	}
	return false
}

// AnnotateStock recalcule le flag in_stock de chaque ligne à partir de
// l'instantané courant.
func AnnotateStock(items []models.DailyOrderItem, snapshot []models.SoftInventoryItem) {
	for i := range items {
		items[i].InStock = CheckSoftStock(items[i], snapshot)
	}
}

// EligibleIDs retourne les lignes sélectionnables pour une soumission :
// uniquement celles en rupture de stock et pas encore soumises. C'est le
// pendant serveur du "tout sélectionner (ruptures)" du dashboard.
func EligibleIDs(items []models.DailyOrderItem, snapshot []models.SoftInventoryItem) map[string]bool {
	eligible := make(map[string]bool)
	for _, it := range items {
		if it.Submitted {
			continue
		}
		if !CheckSoftStock(it, snapshot) {
			eligible[it.ID.String()] = true
		}
	}
	return eligible
}
