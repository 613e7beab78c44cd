package domain

import "github.com/shopspring/decimal"

// Store is a physical storefront exposed by the catalog service.
type Store struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	City string `json:"city,omitempty"`
}

// Product mirrors the public catalog payload. Classification labels are
// optional; their numeric ids are always present. Products are values
// fetched from the catalog, never mutated here.
type Product struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Group       string          `json:"group,omitempty"`
	GroupID     int64           `json:"group_id"`
	Category    string          `json:"category,omitempty"`
	CategoryID  int64           `json:"category_id"`
	Brand       string          `json:"brand,omitempty"`
	BrandID     int64           `json:"brand_id"`
	Color       string          `json:"color,omitempty"`
	ColorID     int64           `json:"color_id"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
}
