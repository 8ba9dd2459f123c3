package app

import (
	"sync"

	"github.com/therajusah/Ecommerce-app/internal/auth"
	"github.com/therajusah/Ecommerce-app/internal/catalog"
	"github.com/therajusah/Ecommerce-app/internal/checkout"
	"github.com/therajusah/Ecommerce-app/internal/store"
)

// Session is one user's cart, wishlist and orders. Each store owns its state;
// nothing is shared between them.
type Session struct {
	UserID   string
	Cart     *store.CartStore
	Wishlist *store.WishlistStore
	Orders   *store.OrderStore
}

// Shop is the application controller. It owns every store and hands out
// Session handles explicitly.
type Shop struct {
	Catalog  *catalog.Catalog
	Auth     *auth.Authenticator
	Checkout *checkout.Service

	mu        sync.Mutex
	sessions  map[string]*Session
	orderOpts []store.OrderStoreOption
}

type Option func(*Shop)

// WithOrderStoreOptions configures every order store the shop creates.
func WithOrderStoreOptions(opts ...store.OrderStoreOption) Option {
	return func(s *Shop) { s.orderOpts = append(s.orderOpts, opts...) }
}

func NewShop(cat *catalog.Catalog, authn *auth.Authenticator, checkoutSvc *checkout.Service, opts ...Option) *Shop {
	s := &Shop{
		Catalog:  cat,
		Auth:     authn,
		Checkout: checkoutSvc,
		sessions: make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Session returns the user's session, creating it on first use.
func (s *Shop) Session(userID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[userID]; ok {
		return sess
	}
	sess := &Session{
		UserID:   userID,
		Cart:     store.NewCartStore(),
		Wishlist: store.NewWishlistStore(),
		Orders:   store.NewOrderStore(s.orderOpts...),
	}
	s.sessions[userID] = sess
	return sess
}

// OrderStores lists the order store of every session.
func (s *Shop) OrderStores() []*store.OrderStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*store.OrderStore, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, sess.Orders)
	}
	return out
}
