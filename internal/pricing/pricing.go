// Package pricing derives the tiered price schedules sold against a
// product's gross rate.
package pricing

import (
	"math"

	"github.com/horeca-one/catalogd/internal/model"
)

// Tier quantities and discount rates. Bulk tiers apply at all times; promo
// tiers apply only inside a promotional window managed elsewhere.
const (
	bulkTier1Qty = 5
	bulkTier2Qty = 10

	bulkTier1Discount = 0.05
	bulkTier2Discount = 0.10

	promoSingleDiscount = 0.03
	promoTier1Discount  = 0.07
	promoTier2Discount  = 0.12
)

// Derive computes both price schedules from a gross rate. Every tier is
// discounted directly off the gross rate and rounded at that moment;
// discounts never compound through an already-rounded tier.
func Derive(grossRate float64) model.DerivedPricing {
	return model.DerivedPricing{
		Bulk: model.BulkPricing{
			Tier1: model.PricingTier{Quantity: bulkTier1Qty, PricePerUnit: discounted(grossRate, bulkTier1Discount)},
			Tier2: model.PricingTier{Quantity: bulkTier2Qty, PricePerUnit: discounted(grossRate, bulkTier2Discount)},
		},
		Promo: model.PromoPricing{
			SingleUnit: discounted(grossRate, promoSingleDiscount),
			Tier1:      model.PricingTier{Quantity: bulkTier1Qty, PricePerUnit: discounted(grossRate, promoTier1Discount)},
			Tier2:      model.PricingTier{Quantity: bulkTier2Qty, PricePerUnit: discounted(grossRate, promoTier2Discount)},
		},
	}
}

// discounted applies a discount rate and rounds half-away-from-zero to two
// decimal places.
func discounted(grossRate, rate float64) float64 {
	return math.Round(grossRate*(1-rate)*100) / 100
}
