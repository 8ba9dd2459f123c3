package store

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/therajusah/Ecommerce-app/internal/domain"
)

// RecentOrdersLimit caps RecentOrders. "Recent" means most recently placed,
// not placed within a time window.
const RecentOrdersLimit = 10

// PlaceOrderRequest carries the caller-supplied part of a new order.
type PlaceOrderRequest struct {
	Lines           []domain.OrderLine
	TotalAmount     decimal.Decimal
	DeliveryAddress domain.Address
	PaymentMethod   string
	UserID          string
	UserEmail       string
}

// ordersState keeps orders newest first.
type ordersState struct {
	orders []domain.Order
}

type orderAction interface{ orderAction() }

type (
	placeOrder        struct{ order domain.Order }
	updateOrderStatus struct {
		id     string
		status domain.OrderStatus
	}
	advanceOrder        struct{ id string }
	cancelOrder         struct{ id string }
	updateOrderTracking struct {
		id    string
		steps []domain.TrackingStep
	}
)

func (placeOrder) orderAction()          {}
func (updateOrderStatus) orderAction()   {}
func (advanceOrder) orderAction()        {}
func (cancelOrder) orderAction()         {}
func (updateOrderTracking) orderAction() {}

// reduceOrders applies one action. On error the returned state is s unchanged.
func reduceOrders(s ordersState, action orderAction, now time.Time) (ordersState, error) {
	switch a := action.(type) {
	case placeOrder:
		orders := make([]domain.Order, 0, len(s.orders)+1)
		orders = append(orders, a.order)
		return ordersState{orders: append(orders, s.orders...)}, nil

	case updateOrderStatus:
		return s.modify(a.id, func(o domain.Order) (domain.Order, error) {
			return transition(o, a.status, now)
		})

	case advanceOrder:
		return s.modify(a.id, func(o domain.Order) (domain.Order, error) {
			next, ok := o.Status.Next()
			if !ok {
				return o, fmt.Errorf("%w: %s", ErrOrderTerminal, o.Status)
			}
			return transition(o, next, now)
		})

	case cancelOrder:
		return s.modify(a.id, func(o domain.Order) (domain.Order, error) {
			if o.Status == domain.OrderStatusCancelled {
				return o, nil
			}
			if !o.Status.IsCancellable() {
				return o, fmt.Errorf("%w: order is %s", ErrNotCancellable, o.Status)
			}
			o.Status = domain.OrderStatusCancelled
			return o, nil
		})

	case updateOrderTracking:
		if len(a.steps) != domain.TrackingStepCount {
			return s, fmt.Errorf("%w: got %d", ErrInvalidTracking, len(a.steps))
		}
		return s.modify(a.id, func(o domain.Order) (domain.Order, error) {
			o.TrackingSteps = domain.CloneTrackingSteps(a.steps)
			return o, nil
		})
	}
	return s, nil
}

// transition moves o to target and marks every tracking step up to target's
// step completed. Steps that already carry a timestamp keep it.
func transition(o domain.Order, target domain.OrderStatus, now time.Time) (domain.Order, error) {
	if !target.IsValid() {
		return o, fmt.Errorf("%w: %q", ErrInvalidStatus, target)
	}
	if target == domain.OrderStatusCancelled {
		return o, fmt.Errorf("%w: use cancel to cancel an order", ErrInvalidTransition)
	}
	if o.Status == domain.OrderStatusCancelled {
		return o, fmt.Errorf("%w: %s", ErrOrderTerminal, o.Status)
	}
	if target.Step() < o.Status.Step() {
		return o, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, target)
	}

	o.Status = target
	for i := 0; i <= target.Step() && i < len(o.TrackingSteps); i++ {
		step := &o.TrackingSteps[i]
		step.Completed = true
		if step.Timestamp == nil {
			ts := now
			step.Timestamp = &ts
		}
	}
	return o, nil
}

// modify replaces the order with the given id by fn's result. fn receives a
// deep copy and may change it freely.
func (s ordersState) modify(id string, fn func(domain.Order) (domain.Order, error)) (ordersState, error) {
	i := s.index(id)
	if i < 0 {
		return s, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}
	updated, err := fn(s.orders[i].Clone())
	if err != nil {
		return s, err
	}
	orders := slices.Clone(s.orders)
	orders[i] = updated
	return ordersState{orders: orders}, nil
}

func (s ordersState) index(id string) int {
	return slices.IndexFunc(s.orders, func(o domain.Order) bool {
		return o.ID == id
	})
}

type OrderStoreOption func(*OrderStore)

func WithClock(c Clock) OrderStoreOption {
	return func(s *OrderStore) { s.now = c }
}

// WithIDGenerator replaces the default "ORD-<uuid>" order id scheme.
func WithIDGenerator(gen func() string) OrderStoreOption {
	return func(s *OrderStore) { s.newID = gen }
}

// OrderStore records placed orders and drives each one through
// confirmed -> processing -> shipped -> delivered, or to cancelled from
// confirmed/processing.
type OrderStore struct {
	mu    sync.RWMutex
	state ordersState
	now   Clock
	newID func() string
}

func NewOrderStore(opts ...OrderStoreOption) *OrderStore {
	s := &OrderStore{
		now:   time.Now,
		newID: newOrderID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newOrderID() string {
	return "ORD-" + uuid.NewString()
}

func (s *OrderStore) dispatch(a orderAction) (ordersState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := reduceOrders(s.state, a, s.now())
	if err != nil {
		return s.state, err
	}
	s.state = next
	return next, nil
}

// mustDispatch applies an action the reducer cannot reject.
func (s *OrderStore) mustDispatch(a orderAction) {
	if _, err := s.dispatch(a); err != nil {
		panic(fmt.Sprintf("store: %T rejected: %v", a, err))
	}
}

func (s *OrderStore) read() ordersState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// PlaceOrder creates a confirmed order at the head of the list.
func (s *OrderStore) PlaceOrder(req PlaceOrderRequest) domain.Order {
	placedAt := s.now()
	order := domain.Order{
		ID:                  s.newID(),
		Lines:               slices.Clone(req.Lines),
		TotalAmount:         req.TotalAmount,
		DeliveryAddress:     req.DeliveryAddress,
		PaymentMethod:       req.PaymentMethod,
		Status:              domain.OrderStatusConfirmed,
		PlacedAt:            placedAt,
		EstimatedDeliveryAt: placedAt.Add(domain.DeliveryWindow),
		TrackingSteps:       domain.NewTrackingSteps(placedAt),
		UserID:              req.UserID,
		UserEmail:           req.UserEmail,
	}
	s.mustDispatch(placeOrder{order: order})
	return order.Clone()
}

// UpdateOrderStatus moves an order forward to status. Skipped states are
// filled in, so the tracking steps always reflect every stage up to status.
// Backward moves, moves out of cancelled, and moves to cancelled are rejected.
func (s *OrderStore) UpdateOrderStatus(orderID string, status domain.OrderStatus) (domain.Order, error) {
	st, err := s.dispatch(updateOrderStatus{id: orderID, status: status})
	if err != nil {
		return domain.Order{}, err
	}
	return st.orders[st.index(orderID)].Clone(), nil
}

// Advance moves an order one step along its delivery path and returns it as
// it stands after the step.
func (s *OrderStore) Advance(orderID string) (domain.Order, error) {
	st, err := s.dispatch(advanceOrder{id: orderID})
	if err != nil {
		return domain.Order{}, err
	}
	return st.orders[st.index(orderID)].Clone(), nil
}

// CancelOrder cancels a confirmed or processing order. Cancelling a
// cancelled order is a no-op. Tracking steps are left as they are.
func (s *OrderStore) CancelOrder(orderID string) (domain.Order, error) {
	st, err := s.dispatch(cancelOrder{id: orderID})
	if err != nil {
		return domain.Order{}, err
	}
	return st.orders[st.index(orderID)].Clone(), nil
}

// UpdateOrderTracking overwrites the tracking steps of an order.
func (s *OrderStore) UpdateOrderTracking(orderID string, steps []domain.TrackingStep) (domain.Order, error) {
	st, err := s.dispatch(updateOrderTracking{id: orderID, steps: steps})
	if err != nil {
		return domain.Order{}, err
	}
	return st.orders[st.index(orderID)].Clone(), nil
}

func (s *OrderStore) Order(orderID string) (domain.Order, error) {
	st := s.read()
	i := st.index(orderID)
	if i < 0 {
		return domain.Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	return st.orders[i].Clone(), nil
}

// Orders returns every order, newest first.
func (s *OrderStore) Orders() []domain.Order {
	return cloneOrders(s.read().orders)
}

// RecentOrders returns at most RecentOrdersLimit orders, newest first.
func (s *OrderStore) RecentOrders() []domain.Order {
	orders := s.read().orders
	return cloneOrders(orders[:min(len(orders), RecentOrdersLimit)])
}

// OpenOrderIDs lists orders that can still advance.
func (s *OrderStore) OpenOrderIDs() []string {
	var ids []string
	for _, o := range s.read().orders {
		if !o.Status.IsTerminal() {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

func cloneOrders(orders []domain.Order) []domain.Order {
	out := make([]domain.Order, len(orders))
	for i, o := range orders {
		out[i] = o.Clone()
	}
	return out
}
