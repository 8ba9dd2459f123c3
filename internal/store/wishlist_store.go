package store

import (
	"slices"
	"sync"

	"github.com/therajusah/Ecommerce-app/internal/domain"
)

type wishlistState struct {
	entries []domain.WishlistEntry
}

type wishlistAction interface{ wishlistAction() }

type (
	addToWishlist      struct{ product domain.Product }
	removeFromWishlist struct{ productID int64 }
	clearWishlist      struct{}
)

func (addToWishlist) wishlistAction()      {}
func (removeFromWishlist) wishlistAction() {}
func (clearWishlist) wishlistAction()      {}

func reduceWishlist(s wishlistState, action wishlistAction) wishlistState {
	switch a := action.(type) {
	case addToWishlist:
		if s.contains(a.product.ID) {
			return s
		}
		return wishlistState{entries: append(slices.Clone(s.entries), domain.NewWishlistEntry(a.product))}

	case removeFromWishlist:
		if !s.contains(a.productID) {
			return s
		}
		entries := slices.DeleteFunc(slices.Clone(s.entries), func(e domain.WishlistEntry) bool {
			return e.ProductID == a.productID
		})
		return wishlistState{entries: entries}

	case clearWishlist:
		return wishlistState{}
	}
	return s
}

func (s wishlistState) contains(productID int64) bool {
	return slices.ContainsFunc(s.entries, func(e domain.WishlistEntry) bool {
		return e.ProductID == productID
	})
}

// WishlistStore is a set of saved products keyed by product id, kept in
// insertion order.
type WishlistStore struct {
	mu    sync.RWMutex
	state wishlistState
}

func NewWishlistStore() *WishlistStore {
	return &WishlistStore{}
}

func (s *WishlistStore) dispatch(a wishlistAction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = reduceWishlist(s.state, a)
}

func (s *WishlistStore) read() wishlistState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// AddToWishlist is a no-op when the product is already saved.
func (s *WishlistStore) AddToWishlist(product domain.Product) {
	s.dispatch(addToWishlist{product: product})
}

func (s *WishlistStore) RemoveFromWishlist(productID int64) {
	s.dispatch(removeFromWishlist{productID: productID})
}

func (s *WishlistStore) ClearWishlist() {
	s.dispatch(clearWishlist{})
}

func (s *WishlistStore) IsInWishlist(productID int64) bool {
	return s.read().contains(productID)
}

func (s *WishlistStore) Count() int {
	return len(s.read().entries)
}

func (s *WishlistStore) Entries() []domain.WishlistEntry {
	return slices.Clone(s.read().entries)
}
