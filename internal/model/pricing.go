package model

// PricingTier is a per-unit price that applies once the purchase quantity
// reaches Quantity.
type PricingTier struct {
	Quantity     int
	PricePerUnit float64
}

// BulkPricing holds the always-on quantity discounts.
type BulkPricing struct {
	Tier1 PricingTier
	Tier2 PricingTier
}

// PromoPricing holds the deeper discount schedule used during promotional
// windows. Window management lives outside this service.
type PromoPricing struct {
	SingleUnit float64
	Tier1      PricingTier
	Tier2      PricingTier
}

// DerivedPricing bundles both schedules derived from a product's gross rate.
type DerivedPricing struct {
	Bulk  BulkPricing
	Promo PromoPricing
}
