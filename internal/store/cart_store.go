package store

import (
	"slices"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/therajusah/Ecommerce-app/internal/domain"
)

type cartState struct {
	lines []domain.CartLine
}

type cartAction interface{ cartAction() }

type (
	addToCart      struct{ product domain.Product }
	updateQuantity struct {
		productID int64
		quantity  int
	}
	removeFromCart struct{ productID int64 }
	clearCart      struct{}
)

func (addToCart) cartAction()      {}
func (updateQuantity) cartAction() {}
func (removeFromCart) cartAction() {}
func (clearCart) cartAction()      {}

// reduceCart never mutates s; it returns a new state sharing nothing writable
// with the old one.
func reduceCart(s cartState, action cartAction) cartState {
	switch a := action.(type) {
	case addToCart:
		if i := s.index(a.product.ID); i >= 0 {
			lines := slices.Clone(s.lines)
			lines[i].Quantity++
			return cartState{lines: lines}
		}
		return cartState{lines: append(slices.Clone(s.lines), domain.NewCartLine(a.product))}

	case updateQuantity:
		i := s.index(a.productID)
		if i < 0 {
			return s
		}
		lines := slices.Clone(s.lines)
		lines[i].Quantity = max(a.quantity, 1)
		return cartState{lines: lines}

	case removeFromCart:
		if s.index(a.productID) < 0 {
			return s
		}
		lines := slices.DeleteFunc(slices.Clone(s.lines), func(l domain.CartLine) bool {
			return l.ProductID == a.productID
		})
		return cartState{lines: lines}

	case clearCart:
		return cartState{}
	}
	return s
}

func (s cartState) index(productID int64) int {
	return slices.IndexFunc(s.lines, func(l domain.CartLine) bool {
		return l.ProductID == productID
	})
}

func (s cartState) total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (s cartState) itemsCount() int {
	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

// CartStore holds the lines a shopper intends to buy. At most one line
// exists per product.
type CartStore struct {
	mu    sync.RWMutex
	state cartState
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

func (s *CartStore) dispatch(a cartAction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = reduceCart(s.state, a)
}

func (s *CartStore) read() cartState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// AddToCart appends the product with quantity 1, or increments the existing line.
func (s *CartStore) AddToCart(product domain.Product) {
	s.dispatch(addToCart{product: product})
}

// UpdateQuantity sets a line's quantity. Values below 1 are clamped to 1;
// removal goes through RemoveFromCart. Unknown products are ignored.
func (s *CartStore) UpdateQuantity(productID int64, quantity int) {
	s.dispatch(updateQuantity{productID: productID, quantity: quantity})
}

func (s *CartStore) RemoveFromCart(productID int64) {
	s.dispatch(removeFromCart{productID: productID})
}

func (s *CartStore) ClearCart() {
	s.dispatch(clearCart{})
}

func (s *CartStore) Lines() []domain.CartLine {
	return slices.Clone(s.read().lines)
}

func (s *CartStore) Line(productID int64) (domain.CartLine, bool) {
	st := s.read()
	i := st.index(productID)
	if i < 0 {
		return domain.CartLine{}, false
	}
	return st.lines[i], true
}

// Total is the sum of unit price times quantity over all lines.
func (s *CartStore) Total() decimal.Decimal {
	return s.read().total()
}

func (s *CartStore) ItemsCount() int {
	return s.read().itemsCount()
}

// Snapshot returns lines, total and count computed from the same state.
func (s *CartStore) Snapshot() domain.CartSnapshot {
	return s.read().snapshot()
}

// TakeAll empties the cart and returns what it held. Lines added after the
// call stay in the cart.
func (s *CartStore) TakeAll() domain.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	taken := s.state
	s.state = reduceCart(s.state, clearCart{})
	return taken.snapshot()
}

func (s cartState) snapshot() domain.CartSnapshot {
	lines := slices.Clone(s.lines)
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return domain.CartSnapshot{
		Lines:      lines,
		Total:      s.total(),
		ItemsCount: s.itemsCount(),
	}
}
