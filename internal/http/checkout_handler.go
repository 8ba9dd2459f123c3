package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/therajusah/Ecommerce-app/internal/app"
	"github.com/therajusah/Ecommerce-app/internal/checkout"
	"github.com/therajusah/Ecommerce-app/internal/domain"
)

type CheckoutHandler struct {
	responder
	shop    *app.Shop
	timeout time.Duration
}

func NewCheckoutHandler(shop *app.Shop, timeout time.Duration, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		responder: responder{logger: logger},
		shop:      shop,
		timeout:   timeout,
	}
}

type PlaceOrderRequestDTO struct {
	Address       domain.Address `json:"address"`
	PaymentMethod string         `json:"payment_method"`
}

// GET /api/v1/checkout/summary
func (h *CheckoutHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFor(w, r, h.shop)
	if !ok {
		return
	}
	h.respondJSON(w, http.StatusOK, h.shop.Checkout.Summary(sess.Cart))
}

// POST /api/v1/checkout
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	user, ok := userFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}
	sess := h.shop.Session(user.ID)

	var req PlaceOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	result, err := h.shop.Checkout.PlaceOrder(ctx, sess.Cart, sess.Orders,
		checkout.Customer{ID: user.ID, Email: user.Email},
		checkout.Request{Address: req.Address, PaymentMethod: req.PaymentMethod})
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, result)
}
