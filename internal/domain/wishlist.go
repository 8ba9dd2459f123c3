package domain

import "github.com/shopspring/decimal"

type WishlistEntry struct {
	ProductID     int64               `json:"product_id"`
	Name          string              `json:"name"`
	Price         decimal.Decimal     `json:"price"`
	OriginalPrice decimal.NullDecimal `json:"original_price"`
	Discount      int                 `json:"discount,omitempty"`
	ImageURL      string              `json:"image"`
	Category      string              `json:"category"`
	Rating        float64             `json:"rating"`
	InStock       bool                `json:"in_stock"`
}

func NewWishlistEntry(p Product) WishlistEntry {
	return WishlistEntry{
		ProductID:     p.ID,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Discount:      p.Discount,
		ImageURL:      p.ImageURL,
		Category:      p.Category,
		Rating:        p.Rating,
		InStock:       p.InStock,
	}
}
