package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	p := Derive(100.00)

	assert.Equal(t, 5, p.Bulk.Tier1.Quantity)
	assert.Equal(t, 10, p.Bulk.Tier2.Quantity)
	assert.InDelta(t, 95.00, p.Bulk.Tier1.PricePerUnit, 0.001)
	assert.InDelta(t, 90.00, p.Bulk.Tier2.PricePerUnit, 0.001)

	assert.InDelta(t, 97.00, p.Promo.SingleUnit, 0.001)
	assert.Equal(t, 5, p.Promo.Tier1.Quantity)
	assert.Equal(t, 10, p.Promo.Tier2.Quantity)
	assert.InDelta(t, 93.00, p.Promo.Tier1.PricePerUnit, 0.001)
	assert.InDelta(t, 88.00, p.Promo.Tier2.PricePerUnit, 0.001)
}

func TestDeriveTierOrdering(t *testing.T) {
	rates := []float64{0.01, 1, 33.33, 123.2, 425.6, 9999.99}

	for _, gross := range rates {
		p := Derive(gross)

		assert.LessOrEqual(t, p.Bulk.Tier2.PricePerUnit, p.Bulk.Tier1.PricePerUnit, "gross %v", gross)
		assert.LessOrEqual(t, p.Bulk.Tier1.PricePerUnit, gross, "gross %v", gross)

		assert.LessOrEqual(t, p.Promo.Tier2.PricePerUnit, p.Promo.Tier1.PricePerUnit, "gross %v", gross)
		assert.LessOrEqual(t, p.Promo.Tier1.PricePerUnit, p.Promo.SingleUnit, "gross %v", gross)
		assert.LessOrEqual(t, p.Promo.SingleUnit, gross, "gross %v", gross)

		assert.Less(t, p.Bulk.Tier1.Quantity, p.Bulk.Tier2.Quantity)
	}
}

func TestDeriveRoundsEachTierFromGross(t *testing.T) {
	// Every tier is rounded off the gross rate directly, never off another
	// already-rounded tier.
	rates := []float64{10.05, 33.33, 123.20, 76.19}

	for _, gross := range rates {
		p := Derive(gross)

		assert.InDelta(t, math.Round(gross*0.95*100)/100, p.Bulk.Tier1.PricePerUnit, 1e-9)
		assert.InDelta(t, math.Round(gross*0.90*100)/100, p.Bulk.Tier2.PricePerUnit, 1e-9)
		assert.InDelta(t, math.Round(gross*0.97*100)/100, p.Promo.SingleUnit, 1e-9)
		assert.InDelta(t, math.Round(gross*0.93*100)/100, p.Promo.Tier1.PricePerUnit, 1e-9)
		assert.InDelta(t, math.Round(gross*0.88*100)/100, p.Promo.Tier2.PricePerUnit, 1e-9)
	}
}

func TestDeriveRounding(t *testing.T) {
	// 33.33 * 0.95 = 31.6635 -> 31.66, 33.33 * 0.88 = 29.3304 -> 29.33
	p := Derive(33.33)
	assert.InDelta(t, 31.66, p.Bulk.Tier1.PricePerUnit, 1e-9)
	assert.InDelta(t, 29.33, p.Promo.Tier2.PricePerUnit, 1e-9)
}
