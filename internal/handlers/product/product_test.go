package product

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velora_back_office/internal/response"
)

func performCreate(t *testing.T, values map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for k, v := range values {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	r := gin.New()
	r.POST("/api/products", CreateProduct)

	req := httptest.NewRequest(http.MethodPost, "/api/products", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateProductNegativePriceBlockedBeforeAnyWrite(t *testing.T) {
	// "-5" échoue la coercion-validation : ni upload MinIO ni insert Scylla.
	w := performCreate(t, map[string]string{
		"name":        "Sneakers Alto",
		"price":       "-5",
		"category_id": gocql.TimeUUID().String(),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, response.TypeError, env.Type)
	assert.Contains(t, env.Fields, "price")
}

func TestCreateProductMissingCategory(t *testing.T) {
	w := performCreate(t, map[string]string{
		"name":  "Sneakers Alto",
		"price": "19.99",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Contains(t, env.Fields, "category_id")
}

func TestUpdateProductInvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.PATCH("/api/products/:id", UpdateProduct)

	req := httptest.NewRequest(http.MethodPatch, "/api/products/pas-un-uuid", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProductNegativePrice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.PATCH("/api/products/:id", UpdateProduct)

	body := []byte(`{"price": -3.5}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/products/"+gocql.TimeUUID().String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Contains(t, env.Fields, "price")
}

func TestDeleteProductInvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.DELETE("/api/products/:id", DeleteProduct)

	req := httptest.NewRequest(http.MethodDelete, "/api/products/pas-un-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, response.TypeError, env.Type)
	assert.Equal(t, "ID produit invalide", env.Message)
}

func TestStaleBrandRow(t *testing.T) {
	a := gocql.TimeUUID()
	b := gocql.TimeUUID()

	tests := []struct {
		name string
		prev *gocql.UUID
		next *gocql.UUID
		want *gocql.UUID
	}{
		{"sans marque avant, rien à purger", nil, &a, nil},
		{"marque inchangée, rien à purger", &a, &a, nil},
		{"changement de marque → purge de l'ancienne", &a, &b, &a},
		{"marque retirée → purge de l'ancienne", &a, nil, &a},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, staleBrandRow(tt.prev, tt.next))
		})
	}
}

func TestUpdateProductUnknownStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.PATCH("/api/products/:id", UpdateProduct)

	body := []byte(`{"status": "published"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/products/"+gocql.TimeUUID().String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
