package forms

import (
	"net/url"
	"testing"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velora_back_office/internal/models"
)

func validValues() url.Values {
	return url.Values{
		"name":        {"Sneakers Alto"},
		"price":       {"19.99"},
		"category_id": {gocql.TimeUUID().String()},
	}
}

func TestParseProductFormDefaults(t *testing.T) {
	f, fields := ParseProductForm(validValues())

	require.Nil(t, fields)
	assert.Equal(t, models.ProductStatusDraft, f.Status)
	assert.True(t, f.InStock)
	assert.False(t, f.IsFeatured)
	assert.Equal(t, 0, f.Stock)
	assert.Nil(t, f.BrandID, "sans marque sélectionnée, brand_id reste absent")
}

func TestParseProductFormNegativePrice(t *testing.T) {
	values := validValues()
	values.Set("price", "-5")

	f, fields := ParseProductForm(values)

	assert.Nil(t, f)
	assert.Contains(t, fields, "price")
}

func TestParseProductFormMissingRequired(t *testing.T) {
	f, fields := ParseProductForm(url.Values{})

	assert.Nil(t, f)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "price")
	assert.Contains(t, fields, "category_id")
}

func TestParseProductFormCoercions(t *testing.T) {
	brandID := gocql.TimeUUID()
	values := validValues()
	values.Set("stock", "42")
	values.Set("in_stock", "false")
	values.Set("is_featured", "true")
	values.Set("status", "active")
	values.Set("brand_id", brandID.String())

	f, fields := ParseProductForm(values)

	require.Nil(t, fields)
	assert.Equal(t, 42, f.Stock)
	assert.False(t, f.InStock)
	assert.True(t, f.IsFeatured)
	assert.Equal(t, models.ProductStatusActive, f.Status)
	require.NotNil(t, f.BrandID)
	assert.Equal(t, brandID, *f.BrandID)
}

func TestParseProductFormBadStatus(t *testing.T) {
	values := validValues()
	values.Set("status", "published")

	_, fields := ParseProductForm(values)
	assert.Contains(t, fields, "status")
}

func TestParseProductFormBadNumbers(t *testing.T) {
	values := validValues()
	values.Set("price", "abc")
	values.Set("stock", "beaucoup")

	_, fields := ParseProductForm(values)
	assert.Contains(t, fields, "price")
	assert.Contains(t, fields, "stock")
}

func TestToProductImageOrdering(t *testing.T) {
	values := validValues()
	values["image_urls"] = []string{"/uploads/a.jpg", "/uploads/b.jpg"}

	f, fields := ParseProductForm(values)
	require.Nil(t, fields)

	p := f.ToProduct([]string{"/uploads/c.jpg", "/uploads/d.jpg"})

	// Les URLs existantes restent devant, les nouvelles derrière, ordre intact.
	assert.Equal(t, []string{"/uploads/a.jpg", "/uploads/b.jpg", "/uploads/c.jpg", "/uploads/d.jpg"}, p.ImageURLs)
}

func TestToProductNoExistingImages(t *testing.T) {
	f, fields := ParseProductForm(validValues())
	require.Nil(t, fields)

	// Création avec 2 nouveaux fichiers et 0 image existante → exactement 2 URLs.
	p := f.ToProduct([]string{"/uploads/x.jpg", "/uploads/y.jpg"})
	assert.Len(t, p.ImageURLs, 2)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
}
