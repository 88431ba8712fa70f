package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Statuts possibles d'un produit. Le statut et le flag in_stock sont
// indépendants : passer un produit en "out_of_stock" ne touche pas in_stock.
const (
	ProductStatusDraft      = "draft"
	ProductStatusActive     = "active"
	ProductStatusArchived   = "archived"
	ProductStatusOutOfStock = "out_of_stock"
)

func ValidProductStatus(s string) bool {
	switch s {
	case ProductStatusDraft, ProductStatusActive, ProductStatusArchived, ProductStatusOutOfStock:
		return true
	}
	return false
}

type Product struct {
	ID          gocql.UUID  `json:"id" db:"product_id"`
	Name        string      `json:"name" db:"name"`
	Description string      `json:"description" db:"description"`
	Price       float64     `json:"price" db:"price"`
	CategoryID  gocql.UUID  `json:"category_id" db:"category_id"`
	BrandID     *gocql.UUID `json:"brand_id,omitempty" db:"brand_id"`
	SKU         string      `json:"sku" db:"sku"`
	Stock       int         `json:"stock" db:"stock"`
	InStock     bool        `json:"in_stock" db:"in_stock"`
	Status      string      `json:"status" db:"status"`
	IsFeatured  bool        `json:"is_featured" db:"is_featured"`
	ImageURLs   []string    `json:"image_urls" db:"image_urls"` // ordre préservé
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`
}
