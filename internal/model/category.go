package model

import "time"

// Status controls whether a catalog entity is visible to storefront readers.
type Status string

const (
	// StatusShow makes the entity visible.
	StatusShow Status = "show"
	// StatusHide keeps the entity out of storefront listings.
	StatusHide Status = "hide"
)

// Category represents one entry in the catalog taxonomy.
type Category struct {
	CreatedAt   time.Time
	ID          string
	Label       string
	Description string
	Status      Status
	Order       int
}
