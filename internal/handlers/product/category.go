package product

import (
	"context"
	"encoding/json"
	"log"

	"github.com/gin-gonic/gin"

	"velora_back_office/internal/cache"
	"velora_back_office/internal/database"
	"velora_back_office/internal/models"
	"velora_back_office/internal/response"
)

// GetCategories liste toutes les catégories pour le select du formulaire
// produit. Liste courte, cache Redis long.
func GetCategories(c *gin.Context) {
	ctx := context.Background()
	cacheKey := "categories:all"

	if val, err := database.Redis.Get(ctx, cacheKey).Result(); err == nil && val != "" {
		var cached []models.Category
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			response.WriteOK(c, cached)
			return
		}
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		response.WriteServerError(c, "Erreur connexion base de données")
		return
	}

	iter := session.Query(`SELECT category_id, name, slug FROM categories`).Iter()

	categories := []models.Category{}
	var cat models.Category

	for iter.Scan(&cat.ID, &cat.Name, &cat.Slug) {
		categories = append(categories, cat)
	}

	if err := iter.Close(); err != nil {
		log.Printf("❌ Erreur lecture catégories: %v", err)
		response.WriteServerError(c, "Erreur lecture catégories")
		return
	}

	if data, err := json.Marshal(categories); err == nil {
		database.Redis.Set(ctx, cacheKey, data, cache.CategoryCacheTTL)
	}

	response.WriteOK(c, categories)
}
