package checkout

import "github.com/shopspring/decimal"

var (
	gstRate               = decimal.RequireFromString("0.18")
	freeDeliveryThreshold = decimal.NewFromInt(500)
	deliveryFee           = decimal.NewFromInt(50)
)

// Summary is the price breakdown shown at checkout. Only Subtotal is stored
// on an order; tax and delivery are display figures.
type Summary struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	GST          decimal.Decimal `json:"gst"`
	Delivery     decimal.Decimal `json:"delivery"`
	Total        decimal.Decimal `json:"total"`
	FreeDelivery bool            `json:"free_delivery"`
	ItemsCount   int             `json:"items_count"`
}

// Quote applies 18% GST and a flat delivery fee that is waived above 500.
func Quote(subtotal decimal.Decimal, itemsCount int) Summary {
	gst := subtotal.Mul(gstRate)
	delivery := deliveryFee
	free := subtotal.GreaterThan(freeDeliveryThreshold)
	if free {
		delivery = decimal.Zero
	}
	return Summary{
		Subtotal:     subtotal,
		GST:          gst,
		Delivery:     delivery,
		Total:        subtotal.Add(gst).Add(delivery),
		FreeDelivery: free,
		ItemsCount:   itemsCount,
	}
}
