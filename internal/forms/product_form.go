package forms

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gocql/gocql"

	"velora_back_office/internal/models"
)

// ProductForm porte les valeurs d'un formulaire produit multipart : tous
// les scalaires arrivent en chaînes et doivent être coercés ici. Les
// erreurs sont remontées champ par champ pour que le dashboard les affiche
// sous chaque input.
type ProductForm struct {
	Name        string
	Description string
	Price       float64
	CategoryID  gocql.UUID
	BrandID     *gocql.UUID // optionnel : absent du payload → nil
	SKU         string
	Stock       int
	InStock     bool
	Status      string
	IsFeatured  bool
	ImageURLs   []string // entrées répétées, ordre préservé
}

// ParseProductForm valide et coerce les valeurs du formulaire. Le second
// retour est la map champ → message ; elle est nil quand tout est valide.
func ParseProductForm(values url.Values) (*ProductForm, map[string]string) {
	fields := make(map[string]string)
	f := &ProductForm{
		// Défauts du formulaire de création
		Status:     models.ProductStatusDraft,
		InStock:    true,
		IsFeatured: false,
	}

	f.Name = strings.TrimSpace(values.Get("name"))
	if f.Name == "" {
		fields["name"] = "Le nom est obligatoire"
	}

	f.Description = values.Get("description")
	f.SKU = strings.TrimSpace(values.Get("sku"))

	// Coercion chaîne → nombre pour le prix
	priceStr := values.Get("price")
	if priceStr == "" {
		fields["price"] = "Le prix est obligatoire"
	} else if price, err := strconv.ParseFloat(priceStr, 64); err != nil {
		fields["price"] = "Le prix doit être un nombre"
	} else if price < 0 {
		fields["price"] = "Le prix ne peut pas être négatif"
	} else {
		f.Price = price
	}

	catStr := values.Get("category_id")
	if catStr == "" {
		fields["category_id"] = "La catégorie est obligatoire"
	} else if cat, err := gocql.ParseUUID(catStr); err != nil {
		fields["category_id"] = "ID de catégorie invalide"
	} else {
		f.CategoryID = cat
	}

	// La marque reste optionnelle : pas de valeur → brand_id absent
	if brandStr := values.Get("brand_id"); brandStr != "" {
		if brand, err := gocql.ParseUUID(brandStr); err != nil {
			fields["brand_id"] = "ID de marque invalide"
		} else {
			f.BrandID = &brand
		}
	}

	if stockStr := values.Get("stock"); stockStr != "" {
		if stock, err := strconv.Atoi(stockStr); err != nil {
			fields["stock"] = "Le stock doit être un entier"
		} else if stock < 0 {
			fields["stock"] = "Le stock ne peut pas être négatif"
		} else {
			f.Stock = stock
		}
	}

	if status := values.Get("status"); status != "" {
		if !models.ValidProductStatus(status) {
			fields["status"] = "Statut inconnu: " + status
		} else {
			f.Status = status
		}
	}

	if inStockStr := values.Get("in_stock"); inStockStr != "" {
		if inStock, err := strconv.ParseBool(inStockStr); err != nil {
			fields["in_stock"] = "Valeur booléenne attendue"
		} else {
			f.InStock = inStock
		}
	}

	if featuredStr := values.Get("is_featured"); featuredStr != "" {
		if featured, err := strconv.ParseBool(featuredStr); err != nil {
			fields["is_featured"] = "Valeur booléenne attendue"
		} else {
			f.IsFeatured = featured
		}
	}

	f.ImageURLs = values["image_urls"]

	if len(fields) > 0 {
		return nil, fields
	}
	return f, nil
}

// ToProduct construit l'entité à insérer. Les URLs uploadées sont
// ajoutées après les URLs existantes du formulaire, dans l'ordre.
func (f *ProductForm) ToProduct(uploadedURLs []string) models.Product {
	now := time.Now()
	return models.Product{
		ID:          gocql.TimeUUID(),
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		CategoryID:  f.CategoryID,
		BrandID:     f.BrandID,
		SKU:         f.SKU,
		Stock:       f.Stock,
		InStock:     f.InStock,
		Status:      f.Status,
		IsFeatured:  f.IsFeatured,
		ImageURLs:   append(append([]string{}, f.ImageURLs...), uploadedURLs...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
