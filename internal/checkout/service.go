package checkout

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/therajusah/Ecommerce-app/internal/domain"
	"github.com/therajusah/Ecommerce-app/internal/store"
)

const DefaultPaymentMethod = "Cash on Delivery"

type Cart interface {
	Snapshot() domain.CartSnapshot
	TakeAll() domain.CartSnapshot
}

type Orders interface {
	PlaceOrder(req store.PlaceOrderRequest) domain.Order
}

type Customer struct {
	ID    string
	Email string
}

type Request struct {
	Address       domain.Address
	PaymentMethod string
}

type Result struct {
	Order   domain.Order `json:"order"`
	Summary Summary      `json:"summary"`
}

type Service struct {
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(logger *zap.Logger) *Service {
	return &Service{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// Summary quotes the cart as it stands.
func (s *Service) Summary(cart Cart) Summary {
	snap := cart.Snapshot()
	return Quote(snap.Total, snap.ItemsCount)
}

// PlaceOrder turns the cart into a confirmed order and empties the cart.
// The order total is the cart total; GST and delivery stay in the summary.
func (s *Service) PlaceOrder(ctx context.Context, cart Cart, orders Orders, customer Customer, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if cart.Snapshot().IsEmpty() {
		return nil, ErrEmptyCart
	}

	if err := validateAddress(s.validate, req.Address); err != nil {
		s.logger.Info("checkout rejected",
			zap.String("user_id", customer.ID),
			zap.Error(err))
		return nil, fmt.Errorf("validate address: %w", err)
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}

	// The order is built from exactly the lines taken here; anything added
	// concurrently stays in the cart.
	snap := cart.TakeAll()
	if snap.IsEmpty() {
		return nil, ErrEmptyCart
	}

	lines := make([]domain.OrderLine, len(snap.Lines))
	for i, l := range snap.Lines {
		lines[i] = domain.NewOrderLine(l)
	}

	order := orders.PlaceOrder(store.PlaceOrderRequest{
		Lines:           lines,
		TotalAmount:     snap.Total,
		DeliveryAddress: req.Address,
		PaymentMethod:   paymentMethod,
		UserID:          customer.ID,
		UserEmail:       customer.Email,
	})

	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("user_id", customer.ID),
		zap.String("total_amount", order.TotalAmount.String()),
		zap.Int("lines", len(order.Lines)))

	return &Result{
		Order:   order,
		Summary: Quote(snap.Total, snap.ItemsCount),
	}, nil
}
