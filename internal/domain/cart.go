package domain

import "github.com/shopspring/decimal"

type CartLine struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	ImageURL  string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// NewCartLine snapshots a product into a cart line with quantity 1.
func NewCartLine(p Product) CartLine {
	return CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		ImageURL:  p.ImageURL,
		Quantity:  1,
	}
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartSnapshot is the full cart state read under a single lock.
type CartSnapshot struct {
	Lines      []CartLine      `json:"items"`
	Total      decimal.Decimal `json:"total"`
	ItemsCount int             `json:"items_count"`
}

func (s CartSnapshot) IsEmpty() bool {
	return len(s.Lines) == 0
}
