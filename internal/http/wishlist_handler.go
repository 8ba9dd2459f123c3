package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/therajusah/Ecommerce-app/internal/app"
	"github.com/therajusah/Ecommerce-app/internal/domain"
)

type WishlistHandler struct {
	responder
	shop *app.Shop
}

func NewWishlistHandler(shop *app.Shop, logger *zap.Logger) *WishlistHandler {
	return &WishlistHandler{
		responder: responder{logger: logger},
		shop:      shop,
	}
}

type WishlistResponseDTO struct {
	Items []domain.WishlistEntry `json:"items"`
	Count int                    `json:"count"`
}

type WishlistMembershipDTO struct {
	ProductID  int64 `json:"product_id"`
	InWishlist bool  `json:"in_wishlist"`
}

func wishlistResponse(sess *app.Session) WishlistResponseDTO {
	items := sess.Wishlist.Entries()
	if items == nil {
		items = []domain.WishlistEntry{}
	}
	return WishlistResponseDTO{Items: items, Count: len(items)}
}

// GET /api/v1/wishlist
func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFor(w, r, h.shop)
	if !ok {
		return
	}
	h.respondJSON(w, http.StatusOK, wishlistResponse(sess))
}

// POST /api/v1/wishlist/items
func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
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

	sess.Wishlist.AddToWishlist(product)
	h.respondJSON(w, http.StatusCreated, wishlistResponse(sess))
}

// GET /api/v1/wishlist/items/{product_id}
func (h *WishlistHandler) Contains(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFor(w, r, h.shop)
	if !ok {
		return
	}

	productID, ok := productIDParam(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	h.respondJSON(w, http.StatusOK, WishlistMembershipDTO{
		ProductID:  productID,
		InWishlist: sess.Wishlist.IsInWishlist(productID),
	})
}

// DELETE /api/v1/wishlist/items/{product_id}
func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFor(w, r, h.shop)
	if !ok {
		return
	}

	productID, ok := productIDParam(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	sess.Wishlist.RemoveFromWishlist(productID)
	h.respondJSON(w, http.StatusOK, wishlistResponse(sess))
}

// DELETE /api/v1/wishlist
func (h *WishlistHandler) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFor(w, r, h.shop)
	if !ok {
		return
	}

	sess.Wishlist.ClearWishlist()
	h.respondJSON(w, http.StatusOK, wishlistResponse(sess))
}
