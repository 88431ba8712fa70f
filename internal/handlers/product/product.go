package product

import (
	"context"
	"encoding/json"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"velora_back_office/internal/cache"
	"velora_back_office/internal/database"
	"velora_back_office/internal/forms"
	"velora_back_office/internal/models"
	"velora_back_office/internal/notify"
	"velora_back_office/internal/response"
	"velora_back_office/internal/services"
)

var notifier *notify.Service

// Init branche la file de notifications du back-office
func Init(n *notify.Service) {
	notifier = n
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListProducts renvoie une page de produits pour le tableau du dashboard.
// Supporte ?page, ?page_size et ?q (filtre texte via Elasticsearch, avec
// repli sur un scan ScyllaDB en mémoire).
func ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	query := strings.TrimSpace(c.Query("q"))

	var products []models.Product
	var err error

	if query != "" {
		products, err = searchProducts(query)
	} else {
		products, err = fetchAllProducts()
	}
	if err != nil {
		log.Printf("❌ Erreur lecture produits: %v", err)
		response.WriteServerError(c, "Erreur lecture produits")
		return
	}

	// Pagination en mémoire : ScyllaDB n'a pas d'OFFSET, et le catalogue
	// du back-office reste de taille raisonnable. Le pageCount renvoyé
	// écrase celui que le dashboard détient.
	total := len(products)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	pageItems := products[start:end]
	if pageItems == nil {
		pageItems = []models.Product{}
	}

	response.WriteOKPage(c, pageItems, response.Pagination{
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
	})
}

// fetchAllProducts scanne la table products (avec cache Redis court)
func fetchAllProducts() ([]models.Product, error) {
	ctx := context.Background()
	cacheKey := "products:all"

	if val, err := database.Redis.Get(ctx, cacheKey).Result(); err == nil && val != "" {
		var cached []models.Product
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return cached, nil
		}
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT product_id, name, description, price, category_id, brand_id, sku,
		stock, in_stock, status, is_featured, image_urls, created_at, updated_at FROM products`).Iter()

	var products []models.Product
	var p models.Product

	for iter.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID, &p.BrandID, &p.SKU,
		&p.Stock, &p.InStock, &p.Status, &p.IsFeatured, &p.ImageURLs, &p.CreatedAt, &p.UpdatedAt) {
		products = append(products, p)
		p = models.Product{} // Reset pour la prochaine itération
	}

	if err := iter.Close(); err != nil {
		return nil, err
	}

	if data, err := json.Marshal(products); err == nil {
		database.Redis.Set(ctx, cacheKey, data, 1*time.Minute)
	}

	return products, nil
}

// searchProducts filtre par texte, Elasticsearch d'abord
func searchProducts(query string) ([]models.Product, error) {
	ids, err := services.SearchProductIDs(query, 500)
	if err == nil && len(ids) > 0 {
		session, err := database.GetCatalogSession()
		if err != nil {
			return nil, err
		}

		var products []models.Product
		for _, id := range ids {
			productUUID, err := gocql.ParseUUID(id)
			if err != nil {
				continue
			}
			var p models.Product
			if err := session.Query(`SELECT product_id, name, description, price, category_id, brand_id, sku,
				stock, in_stock, status, is_featured, image_urls, created_at, updated_at
				FROM products WHERE product_id = ?`, productUUID).Scan(
				&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID, &p.BrandID, &p.SKU,
				&p.Stock, &p.InStock, &p.Status, &p.IsFeatured, &p.ImageURLs, &p.CreatedAt, &p.UpdatedAt); err == nil {
				products = append(products, p)
			}
		}
		return products, nil
	}

	// Repli : scan complet et filtre en mémoire (non optimal, mais le
	// dashboard reste servi quand Elastic est indisponible)
	all, err := fetchAllProducts()
	if err != nil {
		return nil, err
	}

	var filtered []models.Product
	for _, p := range all {
		if containsIgnoreCase(p.Name, query) || containsIgnoreCase(p.Description, query) || containsIgnoreCase(p.SKU, query) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Helper pour recherche insensible à la casse
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// GetProduct renvoie le détail d'un produit (cache-aside Redis), images en
// URLs signées. La ligne brute est mise en cache, la signature se fait à
// chaque lecture : les URLs signées expirent.
func GetProduct(c *gin.Context) {
	productUUID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		response.WriteBadRequest(c, "ID produit invalide")
		return
	}

	ctx := context.Background()
	cacheKey := "product:" + productUUID.String()

	var p models.Product
	cached := false

	if val, err := database.Redis.Get(ctx, cacheKey).Result(); err == nil && val != "" {
		if json.Unmarshal([]byte(val), &p) == nil {
			cached = true
		}
	}

	if !cached {
		session, err := database.GetCatalogSession()
		if err != nil {
			response.WriteServerError(c, "Erreur connexion base de données")
			return
		}

		if err := session.Query(`SELECT product_id, name, description, price, category_id, brand_id, sku,
			stock, in_stock, status, is_featured, image_urls, created_at, updated_at
			FROM products WHERE product_id = ?`, productUUID).Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID, &p.BrandID, &p.SKU,
			&p.Stock, &p.InStock, &p.Status, &p.IsFeatured, &p.ImageURLs, &p.CreatedAt, &p.UpdatedAt); err != nil {
			response.WriteNotFound(c, "Produit introuvable")
			return
		}

		if data, err := json.Marshal(p); err == nil {
			database.Redis.Set(ctx, cacheKey, data, cache.ProductCacheTTL)
		}
	}

	// URLs signées pour l'affichage (24h), une URL en échec est ignorée
	signed := make([]string, 0, len(p.ImageURLs))
	for _, u := range p.ImageURLs {
		if u == "" {
			continue
		}
		if signedURL, err := services.GenerateSignedURL(ctx, u, 24*time.Hour); err == nil {
			signed = append(signed, signedURL)
		}
	}
	p.ImageURLs = signed

	response.WriteOK(c, p)
}

// CreateProduct crée un produit depuis le formulaire multipart du dashboard.
// Les scalaires arrivent en chaînes, les fichiers sous le champ "files".
// La validation passe avant tout upload : un formulaire invalide ne laisse
// aucun objet orphelin dans MinIO.
func CreateProduct(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.WriteBadRequest(c, "Formulaire multipart invalide")
		return
	}

	f, fields := forms.ParseProductForm(url.Values(form.Value))
	if fields != nil {
		response.WriteValidation(c, fields)
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		response.WriteServerError(c, "Erreur connexion base de données")
		return
	}

	// Vérifie la catégorie
	var categoryName string
	if err := session.Query(`SELECT name FROM categories WHERE category_id = ?`, f.CategoryID).Scan(&categoryName); err != nil {
		response.WriteValidation(c, map[string]string{"category_id": "Catégorie introuvable"})
		return
	}

	// Upload des fichiers dans l'ordre d'envoi
	files := form.File["files"]
	uploadedURLs, err := services.UploadFiles(c.Request.Context(), files)
	if err != nil {
		log.Printf("❌ Erreur upload images: %v", err)
		response.WriteServerError(c, "Erreur upload des images")
		return
	}

	p := f.ToProduct(uploadedURLs)

	query := `INSERT INTO products (product_id, name, description, price, category_id, brand_id, sku,
		stock, in_stock, status, is_featured, image_urls, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	if err := session.Query(query, p.ID, p.Name, p.Description, p.Price, p.CategoryID, p.BrandID, p.SKU,
		p.Stock, p.InStock, p.Status, p.IsFeatured, p.ImageURLs, p.CreatedAt, p.UpdatedAt).Exec(); err != nil {
		log.Printf("❌ Erreur création produit: %v", err)
		response.WriteServerError(c, "Erreur création produit")
		return
	}

	// Indexe aussi dans products_by_brand pour le listing par marque
	if p.BrandID != nil {
		if err := session.Query(`INSERT INTO products_by_brand (brand_id, product_id, name, price, stock, status)
			VALUES (?, ?, ?, ?, ?, ?)`,
			*p.BrandID, p.ID, p.Name, p.Price, p.Stock, p.Status).Exec(); err != nil {
			log.Printf("⚠️ Erreur indexation products_by_brand: %v", err)
		}
	}

	cache.InvalidateProduct(p.ID.String())

	// 🔄 Indexation Elasticsearch
	go services.IndexProduct(p)

	response.WriteOK(c, p)
}

// ListProductsByBrand liste les produits d'une marque via la table
// dénormalisée products_by_brand (colonnes réduites du tableau)
func ListProductsByBrand(c *gin.Context) {
	brandUUID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		response.WriteBadRequest(c, "ID de marque invalide")
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		response.WriteServerError(c, "Erreur connexion base de données")
		return
	}

	iter := session.Query(`SELECT product_id, name, price, stock, status
		FROM products_by_brand WHERE brand_id = ?`, brandUUID).Iter()

	products := []models.Product{}
	var p models.Product

	for iter.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.Status) {
		p.BrandID = &brandUUID
		products = append(products, p)
		p = models.Product{}
	}

	if err := iter.Close(); err != nil {
		log.Printf("❌ Erreur lecture produits par marque: %v", err)
		response.WriteServerError(c, "Erreur lecture produits")
		return
	}

	response.WriteOK(c, products)
}

// checkLowStock pousse une notification quand un produit tombe en rupture
func checkLowStock(p models.Product) {
	if notifier == nil || p.Stock > 0 {
		return
	}
	if _, err := notifier.Push(context.Background(), notify.LevelError,
		"Produit en rupture de stock: "+p.Name+" ("+p.SKU+")"); err != nil {
		log.Printf("⚠️ Erreur notification rupture: %v", err)
	}
}
