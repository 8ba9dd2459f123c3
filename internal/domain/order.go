package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// progression is the forward path of an order. The index of a status is also
// the index of the last tracking step it completes.
var progression = []OrderStatus{
	OrderStatusConfirmed,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
}

// String representation (for logging)
func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsValid() bool {
	return s == OrderStatusCancelled || s.Step() >= 0
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// IsCancellable reports whether an order in this status may still be cancelled.
func (s OrderStatus) IsCancellable() bool {
	return s == OrderStatusConfirmed || s == OrderStatusProcessing
}

// Step returns the tracking step index this status completes, or -1 for
// cancelled and unknown statuses.
func (s OrderStatus) Step() int {
	for i, st := range progression {
		if st == s {
			return i
		}
	}
	return -1
}

// Next returns the status that follows s on the delivery path.
func (s OrderStatus) Next() (OrderStatus, bool) {
	i := s.Step()
	if i < 0 || i == len(progression)-1 {
		return "", false
	}
	return progression[i+1], true
}

const (
	TrackingStepCount = 4
	DeliveryWindow    = 5 * 24 * time.Hour
)

var trackingMessages = [TrackingStepCount]string{
	"Order Confirmed",
	"Preparing for Dispatch",
	"Out for Delivery",
	"Delivered",
}

type TrackingStep struct {
	Message   string     `json:"message"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Completed bool       `json:"completed"`
}

// NewTrackingSteps returns the template every order starts with: the first
// step completed at placedAt, the rest pending.
func NewTrackingSteps(placedAt time.Time) []TrackingStep {
	steps := make([]TrackingStep, TrackingStepCount)
	for i, msg := range trackingMessages {
		steps[i] = TrackingStep{Message: msg}
	}
	steps[0].Completed = true
	steps[0].Timestamp = &placedAt
	return steps
}

type OrderLine struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	ImageURL  string          `json:"image"`
}

func NewOrderLine(l CartLine) OrderLine {
	return OrderLine{
		ProductID: l.ProductID,
		Name:      l.Name,
		UnitPrice: l.UnitPrice,
		Quantity:  l.Quantity,
		ImageURL:  l.ImageURL,
	}
}

type Address struct {
	FullName string `json:"full_name" validate:"required"`
	Phone    string `json:"phone" validate:"required,min=10"`
	Street   string `json:"street" validate:"required"`
	City     string `json:"city" validate:"required"`
	Pincode  string `json:"pincode" validate:"required,len=6"`
}

type Order struct {
	ID                  string          `json:"id"`
	Lines               []OrderLine     `json:"items"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	DeliveryAddress     Address         `json:"delivery_address"`
	PaymentMethod       string          `json:"payment_method"`
	Status              OrderStatus     `json:"status"`
	PlacedAt            time.Time       `json:"placed_at"`
	EstimatedDeliveryAt time.Time       `json:"estimated_delivery_at"`
	TrackingSteps       []TrackingStep  `json:"tracking_steps"`
	UserID              string          `json:"user_id,omitempty"`
	UserEmail           string          `json:"user_email,omitempty"`
}

// Clone returns a deep copy so callers can never reach store-owned slices.
func (o Order) Clone() Order {
	c := o
	if o.Lines != nil {
		c.Lines = make([]OrderLine, len(o.Lines))
		copy(c.Lines, o.Lines)
	}
	c.TrackingSteps = CloneTrackingSteps(o.TrackingSteps)
	return c
}

func CloneTrackingSteps(steps []TrackingStep) []TrackingStep {
	if steps == nil {
		return nil
	}
	out := make([]TrackingStep, len(steps))
	for i, st := range steps {
		out[i] = st
		if st.Timestamp != nil {
			ts := *st.Timestamp
			out[i].Timestamp = &ts
		}
	}
	return out
}
