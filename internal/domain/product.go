package domain

import "github.com/shopspring/decimal"

// Product is a catalog record. Stores never hold a *Product; they copy the
// fields they need into their own snapshots.
type Product struct {
	ID            int64               `json:"id"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Price         decimal.Decimal     `json:"price"`
	OriginalPrice decimal.NullDecimal `json:"original_price"`
	Discount      int                 `json:"discount,omitempty"` // percent, 0 when not discounted
	ImageURL      string              `json:"image"`
	Category      string              `json:"category"`
	Rating        float64             `json:"rating"`
	InStock       bool                `json:"in_stock"`
}
