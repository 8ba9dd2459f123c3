package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/therajusah/Ecommerce-app/internal/app"
	"github.com/therajusah/Ecommerce-app/internal/telemetry"
)

type RouterConfig struct {
	RequestTimeout     time.Duration
	MaxRequestBodySize int64
	// TracerProvider defaults to the global provider when nil.
	TracerProvider trace.TracerProvider
}

// NewRouter wires every handler onto a chi router.
func NewRouter(shop *app.Shop, cfg RouterConfig, logger *zap.Logger) http.Handler {
	authHandler := NewAuthHandler(shop.Auth, logger)
	productHandler := NewProductHandler(shop.Catalog, logger)
	cartHandler := NewCartHandler(shop, logger)
	wishlistHandler := NewWishlistHandler(shop, logger)
	checkoutHandler := NewCheckoutHandler(shop, cfg.RequestTimeout, logger)
	ordersHandler := NewOrdersHandler(shop, logger)
	rs := responder{logger: logger}

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(RouteSpanName)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	if cfg.MaxRequestBodySize > 0 {
		r.Use(middleware.RequestSize(cfg.MaxRequestBodySize))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		rs.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/register", authHandler.Register)

		r.Get("/products", productHandler.ListProducts)
		r.Get("/products/{product_id}", productHandler.GetProduct)
		r.Get("/categories", productHandler.ListCategories)

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(shop.Auth, logger))

			r.Post("/auth/logout", authHandler.Logout)
			r.Get("/auth/me", authHandler.Me)
			r.Put("/auth/me", authHandler.UpdateProfile)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartHandler.GetCart)
				r.Delete("/", cartHandler.ClearCart)
				r.Post("/items", cartHandler.AddItem)
				r.Put("/items/{product_id}", cartHandler.UpdateQuantity)
				r.Delete("/items/{product_id}", cartHandler.RemoveItem)
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", wishlistHandler.GetWishlist)
				r.Delete("/", wishlistHandler.ClearWishlist)
				r.Post("/items", wishlistHandler.AddItem)
				r.Get("/items/{product_id}", wishlistHandler.Contains)
				r.Delete("/items/{product_id}", wishlistHandler.RemoveItem)
			})

			r.Get("/checkout/summary", checkoutHandler.Summary)
			r.Post("/checkout", checkoutHandler.PlaceOrder)

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", ordersHandler.ListOrders)
				r.Get("/{order_id}", ordersHandler.GetOrder)
				r.Put("/{order_id}/status", ordersHandler.UpdateStatus)
				r.Post("/{order_id}/advance", ordersHandler.Advance)
				r.Post("/{order_id}/cancel", ordersHandler.CancelOrder)
				r.Put("/{order_id}/tracking", ordersHandler.UpdateTracking)
			})
		})
	})

	opts := []otelhttp.Option{otelhttp.WithPropagators(telemetry.Propagator())}
	if cfg.TracerProvider != nil {
		opts = append(opts, otelhttp.WithTracerProvider(cfg.TracerProvider))
	}
	return otelhttp.NewHandler(r, "shop-api", opts...)
}
