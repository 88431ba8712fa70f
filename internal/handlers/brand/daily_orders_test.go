package brand

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velora_back_office/internal/response"
)

func performSubmit(t *testing.T, brandID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/api/brands/:id/daily-orders/submit", SubmitDailyOrders)

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/brands/"+brandID+"/daily-orders/submit", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestSubmitDailyOrdersEmptySelection(t *testing.T) {
	// Sélection vide : rejet immédiat, aucune écriture ni lecture en base.
	w := performSubmit(t, gocql.TimeUUID().String(), map[string]interface{}{
		"date":     "2026-08-25",
		"item_ids": []string{},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, response.TypeError, env.Type)
	assert.Equal(t, "Aucune commande sélectionnée", env.Message)
}

func TestSubmitDailyOrdersInvalidBrandID(t *testing.T) {
	w := performSubmit(t, "pas-un-uuid", map[string]interface{}{
		"date":     "2026-08-25",
		"item_ids": []string{"x"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.TypeError, decodeEnvelope(t, w).Type)
}

func TestSubmitDailyOrdersMissingDate(t *testing.T) {
	w := performSubmit(t, gocql.TimeUUID().String(), map[string]interface{}{
		"item_ids": []string{"x"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClampPaging(t *testing.T) {
	tests := []struct {
		name         string
		page, size   int
		wantPage     int
		wantPageSize int
	}{
		{"valeurs normales", 2, 20, 2, 20},
		{"page nulle → 1", 0, 20, 1, 20},
		{"taille nulle → défaut", 1, 0, 1, defaultPageSize},
		{"taille démesurée → plafond", 1, 5000, 1, maxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, size := clampPaging(tt.page, tt.size)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPageSize, size)
		})
	}
}

func TestGetDailyOrdersBadDate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/api/brands/:id/daily-orders", GetDailyOrders)

	req := httptest.NewRequest(http.MethodGet,
		"/api/brands/"+gocql.TimeUUID().String()+"/daily-orders?date=25-08-2026", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, response.TypeError, env.Type)
}
