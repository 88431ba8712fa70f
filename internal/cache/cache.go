package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gocql/gocql"

	"velora_back_office/internal/database"
	"velora_back_office/internal/models"
)

const (
	UserCacheTTL     = 5 * time.Minute
	BrandCacheTTL    = 10 * time.Minute
	ProductCacheTTL  = 10 * time.Minute
	CategoryCacheTTL = 1 * time.Hour
)

// GetUserFromCache récupère un client depuis Redis ou ScyllaDB
func GetUserFromCache(userID string) (*models.User, error) {
	ctx := context.Background()
	key := "user:" + userID

	// 1. Essayer le cache Redis
	data, err := database.Redis.Get(ctx, key).Result()
	if err == nil {
		var user models.User
		if json.Unmarshal([]byte(data), &user) == nil {
			return &user, nil
		}
	}

	// 2. Récupérer de ScyllaDB
	session, err := database.GetUsersSession()
	if err != nil {
		return nil, err
	}

	userUUID, err := gocql.ParseUUID(userID)
	if err != nil {
		return nil, err
	}

	var (
		name, email, role string
		phone, address    *string
		createdAt         time.Time
	)

	err = session.Query(`SELECT name, email, role, phone, address, created_at
		FROM users WHERE user_id = ?`, userUUID).Scan(
		&name, &email, &role, &phone, &address, &createdAt)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:        userID,
		Name:      name,
		Email:     email,
		Role:      role,
		Phone:     phone,
		Address:   address,
		CreatedAt: &createdAt,
	}

	// 3. Mettre en cache
	jsonData, _ := json.Marshal(user)
	database.Redis.Set(ctx, key, jsonData, UserCacheTTL)

	return user, nil
}

// GetBrandFromCache récupère une marque depuis Redis ou ScyllaDB
func GetBrandFromCache(brandID gocql.UUID) (*models.Brand, error) {
	ctx := context.Background()
	key := "brand:" + brandID.String()

	data, err := database.Redis.Get(ctx, key).Result()
	if err == nil {
		var brand models.Brand
		if json.Unmarshal([]byte(data), &brand) == nil {
			return &brand, nil
		}
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	brand := &models.Brand{ID: brandID}
	err = session.Query(`SELECT name, slug, description, contact_email, logo_url, created_at, updated_at
		FROM brands WHERE brand_id = ?`, brandID).Scan(
		&brand.Name, &brand.Slug, &brand.Description, &brand.ContactEmail,
		&brand.LogoURL, &brand.CreatedAt, &brand.UpdatedAt)
	if err != nil {
		return nil, err
	}

	jsonData, _ := json.Marshal(brand)
	database.Redis.Set(ctx, key, jsonData, BrandCacheTTL)

	return brand, nil
}

// InvalidateBrand purge le cache d'une marque après mutation
func InvalidateBrand(brandID string) {
	database.Redis.Del(context.Background(), "brand:"+brandID)
}

// InvalidateProduct purge le détail d'un produit et la liste complète
// (clé "products:all" écrite par le listing) après mutation
func InvalidateProduct(productID string) {
	ctx := context.Background()
	database.Redis.Del(ctx, "product:"+productID)
	database.Redis.Del(ctx, "products:all")
}

// InvalidateCategories purge la liste des catégories
func InvalidateCategories() {
	database.Redis.Del(context.Background(), "categories:all")
}
