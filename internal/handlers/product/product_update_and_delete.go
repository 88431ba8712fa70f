package product

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"velora_back_office/internal/cache"
	"velora_back_office/internal/database"
	"velora_back_office/internal/models"
	"velora_back_office/internal/response"
	"velora_back_office/internal/services"
)

// UpdateProduct applique un PATCH JSON partiel. Le dashboard envoie pour
// les images la liste déjà fusionnée (existantes conservées + nouvelles
// URLs d'upload), elle remplace image_urls telle quelle, ordre compris.
func UpdateProduct(c *gin.Context) {
	productUUID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		response.WriteBadRequest(c, "ID produit invalide")
		return
	}

	var input struct {
		Name        *string   `json:"name"`
		Description *string   `json:"description"`
		Price       *float64  `json:"price"`
		CategoryID  *string   `json:"category_id"`
		BrandID     *string   `json:"brand_id"`
		SKU         *string   `json:"sku"`
		Stock       *int      `json:"stock"`
		InStock     *bool     `json:"in_stock"`
		Status      *string   `json:"status"`
		IsFeatured  *bool     `json:"is_featured"`
		ImageURLs   *[]string `json:"image_urls"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.WriteBadRequest(c, "Données invalides")
		return
	}

	if input.Price != nil && *input.Price < 0 {
		response.WriteValidation(c, map[string]string{"price": "Le prix ne peut pas être négatif"})
		return
	}
	if input.Status != nil && !models.ValidProductStatus(*input.Status) {
		response.WriteValidation(c, map[string]string{"status": "Statut inconnu: " + *input.Status})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		response.WriteServerError(c, "Erreur connexion base de données")
		return
	}

	// Changement de marque : il faut retenir l'ancienne clé pour purger la
	// ligne dénormalisée devenue obsolète
	var prevBrandID *gocql.UUID
	if input.BrandID != nil {
		if err := session.Query(`SELECT brand_id FROM products WHERE product_id = ?`,
			productUUID).Scan(&prevBrandID); err != nil {
			response.WriteNotFound(c, "Produit introuvable")
			return
		}
	}

	updates := []string{}
	values := []interface{}{}

	if input.Name != nil {
		updates = append(updates, "name = ?")
		values = append(values, *input.Name)
	}
	if input.Description != nil {
		updates = append(updates, "description = ?")
		values = append(values, *input.Description)
	}
	if input.Price != nil {
		updates = append(updates, "price = ?")
		values = append(values, *input.Price)
	}
	if input.CategoryID != nil {
		catUUID, err := gocql.ParseUUID(*input.CategoryID)
		if err != nil {
			response.WriteValidation(c, map[string]string{"category_id": "ID de catégorie invalide"})
			return
		}
		updates = append(updates, "category_id = ?")
		values = append(values, catUUID)
	}
	if input.BrandID != nil {
		brandUUID, err := gocql.ParseUUID(*input.BrandID)
		if err != nil {
			response.WriteValidation(c, map[string]string{"brand_id": "ID de marque invalide"})
			return
		}
		updates = append(updates, "brand_id = ?")
		values = append(values, brandUUID)
	}
	if input.SKU != nil {
		updates = append(updates, "sku = ?")
		values = append(values, *input.SKU)
	}
	if input.Stock != nil {
		updates = append(updates, "stock = ?")
		values = append(values, *input.Stock)
	}
	if input.InStock != nil {
		// in_stock et status restent indépendants : aucune écriture croisée
		updates = append(updates, "in_stock = ?")
		values = append(values, *input.InStock)
	}
	if input.Status != nil {
		updates = append(updates, "status = ?")
		values = append(values, *input.Status)
	}
	if input.IsFeatured != nil {
		updates = append(updates, "is_featured = ?")
		values = append(values, *input.IsFeatured)
	}
	if input.ImageURLs != nil {
		updates = append(updates, "image_urls = ?")
		values = append(values, *input.ImageURLs)
	}

	if len(updates) == 0 {
		response.WriteBadRequest(c, "Aucune donnée à mettre à jour")
		return
	}

	updates = append(updates, "updated_at = ?")
	values = append(values, time.Now())

	// Ajouter product_id à la fin
	values = append(values, productUUID)

	query := "UPDATE products SET " + updates[0]
	for i := 1; i < len(updates); i++ {
		query += ", " + updates[i]
	}
	query += " WHERE product_id = ?"

	if err := session.Query(query, values...).Exec(); err != nil {
		log.Printf("❌ Erreur mise à jour produit: %v", err)
		response.WriteServerError(c, "Erreur lors de la mise à jour")
		return
	}

	cache.InvalidateProduct(productUUID.String())

	// Relit la ligne pour réindexer et vérifier la rupture de stock
	var p models.Product
	if err := session.Query(`SELECT product_id, name, description, price, category_id, brand_id, sku,
		stock, in_stock, status, is_featured, image_urls, created_at, updated_at
		FROM products WHERE product_id = ?`, productUUID).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID, &p.BrandID, &p.SKU,
		&p.Stock, &p.InStock, &p.Status, &p.IsFeatured, &p.ImageURLs, &p.CreatedAt, &p.UpdatedAt); err == nil {
		go services.IndexProduct(p)
		if input.Stock != nil {
			checkLowStock(p)
		}
		// Rafraîchit la ligne dénormalisée par marque
		if p.BrandID != nil {
			if err := session.Query(`INSERT INTO products_by_brand (brand_id, product_id, name, price, stock, status)
				VALUES (?, ?, ?, ?, ?, ?)`,
				*p.BrandID, p.ID, p.Name, p.Price, p.Stock, p.Status).Exec(); err != nil {
				log.Printf("⚠️ Erreur rafraîchissement products_by_brand: %v", err)
			}
		}
		// Et purge celle de l'ancienne marque si le produit en a changé
		if old := staleBrandRow(prevBrandID, p.BrandID); old != nil {
			if err := session.Query(`DELETE FROM products_by_brand WHERE brand_id = ? AND product_id = ?`,
				*old, p.ID).Exec(); err != nil {
				log.Printf("⚠️ Erreur purge products_by_brand: %v", err)
			}
		}
	}

	response.WriteOK(c, gin.H{"id": productUUID.String()})
}

// staleBrandRow retourne la clé de l'ancienne ligne products_by_brand à
// purger quand le produit a changé de marque, nil sinon
func staleBrandRow(prev, next *gocql.UUID) *gocql.UUID {
	if prev == nil {
		return nil
	}
	if next != nil && *next == *prev {
		return nil
	}
	return prev
}

// DeleteProduct supprime le produit, sa ligne par marque, son cache et
// son document Elasticsearch. Le dashboard refetch la page courante après.
func DeleteProduct(c *gin.Context) {
	productUUID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		response.WriteBadRequest(c, "ID produit invalide")
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		response.WriteServerError(c, "Erreur connexion base de données")
		return
	}

	// Récupère brand_id et image_urls avant suppression pour nettoyer
	// products_by_brand et les objets MinIO
	var brandID *gocql.UUID
	var imageURLs []string
	if err := session.Query(`SELECT brand_id, image_urls FROM products WHERE product_id = ?`,
		productUUID).Scan(&brandID, &imageURLs); err != nil {
		response.WriteNotFound(c, "Produit introuvable")
		return
	}

	if err := session.Query(`DELETE FROM products WHERE product_id = ?`, productUUID).Exec(); err != nil {
		log.Printf("❌ Erreur suppression produit: %v", err)
		response.WriteServerError(c, "Erreur lors de la suppression")
		return
	}

	if brandID != nil {
		if err := session.Query(`DELETE FROM products_by_brand WHERE brand_id = ? AND product_id = ?`,
			*brandID, productUUID).Exec(); err != nil {
			log.Printf("⚠️ Erreur nettoyage products_by_brand: %v", err)
		}
	}

	cache.InvalidateProduct(productUUID.String())

	go services.RemoveProductIndex(productUUID.String())

	// Nettoyage best-effort des objets MinIO du produit
	go func(urls []string) {
		ctx := context.Background()
		for _, u := range urls {
			if err := services.RemoveFile(ctx, u); err != nil {
				log.Printf("⚠️ Erreur suppression objet MinIO %s: %v", u, err)
			}
		}
	}(imageURLs)

	response.WriteOK(c, gin.H{"id": productUUID.String()})
}
