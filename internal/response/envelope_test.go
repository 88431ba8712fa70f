package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOKEnvelope(t *testing.T) {
	env := OK(map[string]string{"name": "Velora"})

	data, err := json.Marshal(env)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "OK", decoded["type"])
	assert.NotContains(t, decoded, "message")
	assert.NotContains(t, decoded, "pagination")
}

func TestErrorEnvelopeOmitsData(t *testing.T) {
	env := Error("Erreur lecture produits")

	data, err := json.Marshal(env)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "ERROR", decoded["type"])
	assert.Equal(t, "Erreur lecture produits", decoded["message"])
	assert.NotContains(t, decoded, "data")
}

func TestOKPagePaginationFieldNames(t *testing.T) {
	env := OKPage([]int{1, 2, 3}, Pagination{TotalPages: 7, Page: 2, PageSize: 20})

	data, err := json.Marshal(env)
	require.NoError(t, err)

	var decoded struct {
		Pagination map[string]int `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Le dashboard lit exactement ces clés pour écraser son pageCount
	assert.Equal(t, 7, decoded.Pagination["totalPages"])
	assert.Equal(t, 2, decoded.Pagination["page"])
	assert.Equal(t, 20, decoded.Pagination["pageSize"])
}

func TestValidationEnvelopeCarriesFields(t *testing.T) {
	env := ValidationError("Données invalides", map[string]string{"price": "Le prix ne peut pas être négatif"})

	assert.Equal(t, TypeError, env.Type)
	assert.Equal(t, "Le prix ne peut pas être négatif", env.Fields["price"])
}
