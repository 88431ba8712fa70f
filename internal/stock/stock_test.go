package stock

import (
	"testing"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"

	"velora_back_office/internal/models"
)

func line(sku, size, color string) models.DailyOrderItem {
	return models.DailyOrderItem{ID: gocql.TimeUUID(), SKU: sku, Size: size, Color: color, Quantity: 1}
}

func TestCheckSoftStock(t *testing.T) {
	snapshot := []models.SoftInventoryItem{
		{SKU: "A1", Size: "M", Color: "Rouge", Quantity: 3},
		{SKU: "A1", Size: "L", Color: "", Quantity: 0},
		{SKU: "B2", Size: "S", Color: "", Quantity: 5},
	}

	tests := []struct {
		name string
		item models.DailyOrderItem
		want bool
	}{
		{"sku et size exacts, couleur insensible à la casse", line("A1", "M", "rouge"), true},
		{"sans couleur demandée, n'importe quelle couleur suffit", line("A1", "M", ""), true},
		{"quantité à zéro → rupture", line("A1", "L", ""), false},
		{"sku inconnu → rupture", line("Z9", "M", ""), false},
		{"size différente → rupture", line("B2", "M", ""), false},
		{"couleur demandée absente → rupture", line("B2", "S", "bleu"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckSoftStock(tt.item, snapshot))
		})
	}
}

func TestCheckSoftStockZeroQuantityNoColor(t *testing.T) {
	// SKU "A1" taille "M" à quantité 0 : la ligne sans couleur est en rupture.
	snapshot := []models.SoftInventoryItem{{SKU: "A1", Size: "M", Quantity: 0}}
	assert.False(t, CheckSoftStock(line("A1", "M", ""), snapshot))
}

func TestCheckSoftStockEmptySnapshot(t *testing.T) {
	assert.False(t, CheckSoftStock(line("A1", "M", ""), nil))
}

func TestAnnotateStock(t *testing.T) {
	snapshot := []models.SoftInventoryItem{{SKU: "A1", Size: "M", Quantity: 2}}
	items := []models.DailyOrderItem{line("A1", "M", ""), line("A1", "XL", "")}

	AnnotateStock(items, snapshot)

	assert.True(t, items[0].InStock)
	assert.False(t, items[1].InStock)
}

func TestEligibleIDsNeverContainsInStockLines(t *testing.T) {
	snapshot := []models.SoftInventoryItem{
		{SKU: "A1", Size: "M", Quantity: 4},
	}
	inStock := line("A1", "M", "")
	outOfStock := line("A1", "XL", "")
	submitted := line("C3", "S", "")
	submitted.Submitted = true

	eligible := EligibleIDs([]models.DailyOrderItem{inStock, outOfStock, submitted}, snapshot)

	assert.False(t, eligible[inStock.ID.String()])
	assert.True(t, eligible[outOfStock.ID.String()])
	assert.False(t, eligible[submitted.ID.String()])
}

func TestEligibleIDsSnapshotFailureDegradesToAllEligible(t *testing.T) {
	// Instantané indisponible → tout est considéré en rupture, donc soumissible.
	items := []models.DailyOrderItem{line("A1", "M", ""), line("B2", "S", "")}
	eligible := EligibleIDs(items, nil)
	assert.Len(t, eligible, 2)
}
