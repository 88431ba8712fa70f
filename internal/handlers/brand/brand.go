package brand

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"velora_back_office/internal/cache"
	"velora_back_office/internal/database"
	"velora_back_office/internal/models"
	"velora_back_office/internal/notify"
	"velora_back_office/internal/response"
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

// clampPaging normalise page et page_size (même plafond que le listing produits)
func clampPaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// GetBrands liste les marques, paginées (alimente les selects du dashboard)
func GetBrands(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	page, pageSize = clampPaging(page, pageSize)

	session, err := database.GetCatalogSession()
	if err != nil {
		response.WriteServerError(c, "Erreur connexion base de données")
		return
	}

	iter := session.Query(`SELECT brand_id, name, slug, description, contact_email, logo_url, created_at, updated_at
		FROM brands`).Iter()

	var brands []models.Brand
	var b models.Brand

	for iter.Scan(&b.ID, &b.Name, &b.Slug, &b.Description, &b.ContactEmail, &b.LogoURL, &b.CreatedAt, &b.UpdatedAt) {
		brands = append(brands, b)
		b = models.Brand{}
	}

	if err := iter.Close(); err != nil {
		log.Printf("❌ Erreur lecture marques: %v", err)
		response.WriteServerError(c, "Erreur lecture marques")
		return
	}

	total := len(brands)
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

	pageItems := brands[start:end]
	if pageItems == nil {
		pageItems = []models.Brand{}
	}

	response.WriteOKPage(c, pageItems, response.Pagination{
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
	})
}

// GetBrand renvoie le détail d'une marque (cache Redis)
func GetBrand(c *gin.Context) {
	brandUUID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		response.WriteBadRequest(c, "ID de marque invalide")
		return
	}

	brand, err := cache.GetBrandFromCache(brandUUID)
	if err != nil {
		response.WriteNotFound(c, "Marque introuvable")
		return
	}

	response.WriteOK(c, brand)
}

type brandInput struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	LogoURL      string `json:"logo_url"`
}

// CreateBrand crée une marque depuis le formulaire du dashboard
func CreateBrand(c *gin.Context) {
	var input brandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.WriteValidation(c, map[string]string{"name": "Le nom est obligatoire"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		response.WriteServerError(c, "Erreur connexion base de données")
		return
	}

	now := time.Now()
	b := models.Brand{
		ID:           gocql.TimeUUID(),
		Name:         input.Name,
		Slug:         slugify(input.Name),
		Description:  input.Description,
		ContactEmail: input.ContactEmail,
		LogoURL:      input.LogoURL,
		CreatedAt:    &now,
		UpdatedAt:    &now,
	}

	query := `INSERT INTO brands (brand_id, name, slug, description, contact_email, logo_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	if err := session.Query(query, b.ID, b.Name, b.Slug, b.Description, b.ContactEmail,
		b.LogoURL, b.CreatedAt, b.UpdatedAt).Exec(); err != nil {
		log.Printf("❌ Erreur création marque: %v", err)
		response.WriteServerError(c, "Erreur création marque")
		return
	}

	response.WriteOK(c, b)
}

// UpdateBrand applique un PATCH partiel sur une marque
func UpdateBrand(c *gin.Context) {
	brandUUID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		response.WriteBadRequest(c, "ID de marque invalide")
		return
	}

	var input struct {
		Name         *string `json:"name"`
		Description  *string `json:"description"`
		ContactEmail *string `json:"contact_email"`
		LogoURL      *string `json:"logo_url"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.WriteBadRequest(c, "Données invalides")
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		response.WriteServerError(c, "Erreur connexion base de données")
		return
	}

	updates := []string{}
	values := []interface{}{}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			response.WriteValidation(c, map[string]string{"name": "Le nom est obligatoire"})
			return
		}
		updates = append(updates, "name = ?", "slug = ?")
		values = append(values, *input.Name, slugify(*input.Name))
	}
	if input.Description != nil {
		updates = append(updates, "description = ?")
		values = append(values, *input.Description)
	}
	if input.ContactEmail != nil {
		updates = append(updates, "contact_email = ?")
		values = append(values, *input.ContactEmail)
	}
	if input.LogoURL != nil {
		updates = append(updates, "logo_url = ?")
		values = append(values, *input.LogoURL)
	}

	if len(updates) == 0 {
		response.WriteBadRequest(c, "Aucune donnée à mettre à jour")
		return
	}

	updates = append(updates, "updated_at = ?")
	values = append(values, time.Now())
	values = append(values, brandUUID)

	query := "UPDATE brands SET " + strings.Join(updates, ", ") + " WHERE brand_id = ?"

	if err := session.Query(query, values...).Exec(); err != nil {
		log.Printf("❌ Erreur mise à jour marque: %v", err)
		response.WriteServerError(c, "Erreur lors de la mise à jour")
		return
	}

	cache.InvalidateBrand(brandUUID.String())

	response.WriteOK(c, gin.H{"id": brandUUID.String()})
}

// DeleteBrand supprime une marque
func DeleteBrand(c *gin.Context) {
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

	if err := session.Query(`DELETE FROM brands WHERE brand_id = ?`, brandUUID).Exec(); err != nil {
		log.Printf("❌ Erreur suppression marque: %v", err)
		response.WriteServerError(c, "Erreur lors de la suppression")
		return
	}

	cache.InvalidateBrand(brandUUID.String())

	response.WriteOK(c, gin.H{"id": brandUUID.String()})
}

// slugify normalise un nom de marque en slug URL
func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}
