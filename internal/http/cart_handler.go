package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/therajusah/Ecommerce-app/internal/app"
)

type CartHandler struct {
	responder
	shop *app.Shop
}

func NewCartHandler(shop *app.Shop, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		responder: responder{logger: logger},
		shop:      shop,
	}
}

type AddItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

// GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFor(w, r, h.shop)
	if !ok {
		return
	}
	h.respondJSON(w, http.StatusOK, sess.Cart.Snapshot())
}

// POST /api/v1/cart/items
// Adding a product already in the cart bumps its quantity by one.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFor(w, r, h.shop)
	if !ok {
		return
	}

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		h.respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}

	product, err := h.shop.Catalog.Get(req.ProductID)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if !product.InStock {
		h.respondError(w, http.StatusConflict, "out_of_stock", "product is out of stock")
		return
	}

	sess.Cart.AddToCart(product)
	h.respondJSON(w, http.StatusCreated, sess.Cart.Snapshot())
}

// PUT /api/v1/cart/items/{product_id}
// Quantities below one are clamped to one; unknown products are ignored.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFor(w, r, h.shop)
	if !ok {
		return
	}

	productID, ok := productIDParam(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	sess.Cart.UpdateQuantity(productID, req.Quantity)
	h.respondJSON(w, http.StatusOK, sess.Cart.Snapshot())
}

// DELETE /api/v1/cart/items/{product_id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFor(w, r, h.shop)
	if !ok {
		return
	}

	productID, ok := productIDParam(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	sess.Cart.RemoveFromCart(productID)
	h.respondJSON(w, http.StatusOK, sess.Cart.Snapshot())
}

// DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFor(w, r, h.shop)
	if !ok {
		return
	}

	sess.Cart.ClearCart()
	h.respondJSON(w, http.StatusOK, sess.Cart.Snapshot())
}
