package models

import (
	"github.com/gocql/gocql"
)

// DailyOrderItem est une ligne de commande rattachée à une marque et à un
// jour calendaire. C'est la file de triage des ruptures de stock.
type DailyOrderItem struct {
	ID        gocql.UUID `json:"id" db:"item_id"`
	BrandID   gocql.UUID `json:"brand_id" db:"brand_id"`
	Day       string     `json:"day" db:"day"` // format YYYY-MM-DD
	SKU       string     `json:"sku" db:"sku"`
	Color     string     `json:"color,omitempty" db:"color"`
	Size      string     `json:"size" db:"size"`
	Quantity  int        `json:"quantity" db:"quantity"`
	Submitted bool       `json:"submitted" db:"submitted"`

	// InStock est calculé à la lecture via le soft inventory, jamais stocké.
	InStock bool `json:"in_stock" db:"-"`
}

// SoftInventoryItem est une ligne de l'instantané de stock secondaire,
// potentiellement périmé, utilisé uniquement pour flaguer les lignes
// livrables sans interroger le système de stock maître.
type SoftInventoryItem struct {
	SKU      string `json:"sku" db:"sku"`
	Size     string `json:"size" db:"size"`
	Color    string `json:"color,omitempty" db:"color"`
	Quantity int    `json:"quantity" db:"quantity"`
}
