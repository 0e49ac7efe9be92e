// Package model defines the domain types shared across the catalog pipeline.
package model

import "time"

// SourceRecord is one normalized row from a price sheet. It lives only for
// the duration of an import run; accepted records become Products.
type SourceRecord struct {
	SKU           string
	Name          string
	HSN           string
	Unit          string
	Brand         string
	CategoryLabel string
	ImageHint     string
	TaxableRate   float64
	TaxPercent    float64
	GrossRate     float64
}

// ProductKey is the {sku, name} projection used to seed duplicate detection.
type ProductKey struct {
	SKU  string
	Name string
}

// Prices is the flat base price block carried by every product.
type Prices struct {
	OriginalPrice float64
	Price         float64
	Discount      float64
}

// Product is a persisted catalog entry.
type Product struct {
	CreatedAt   time.Time
	ID          string
	SKU         string
	Name        string
	Description string
	Slug        string
	HSN         string
	Unit        string
	Brand       string
	CategoryID  string
	Image       string
	Status      Status
	Prices      Prices
	Pricing     DerivedPricing
	TaxableRate float64
	TaxPercent  float64
	Stock       int
	Order       int
}

// DefaultStock is the stock level assigned to imported products.
const DefaultStock = 100
