package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/therajusah/Ecommerce-app/internal/app"
	"github.com/therajusah/Ecommerce-app/internal/domain"
)

type OrdersHandler struct {
	responder
	shop *app.Shop
}

func NewOrdersHandler(shop *app.Shop, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{
		responder: responder{logger: logger},
		shop:      shop,
	}
}

type UpdateStatusRequestDTO struct {
	Status domain.OrderStatus `json:"status"`
}

type UpdateTrackingRequestDTO struct {
	TrackingSteps []domain.TrackingStep `json:"tracking_steps"`
}

// orderIDParam reads {order_id}, writing 400 when it is missing.
func (rs responder) orderIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	orderID := chi.URLParam(r, "order_id")
	if orderID == "" {
		rs.respondError(w, http.StatusBadRequest, "missing_order_id", "order_id is required")
		return "", false
	}
	return orderID, true
}

// GET /api/v1/orders
func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFor(w, r, h.shop)
	if !ok {
		return
	}
	h.respondJSON(w, http.StatusOK, sess.Orders.RecentOrders())
}

// GET /api/v1/orders/{order_id}
func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFor(w, r, h.shop)
	if !ok {
		return
	}
	orderID, ok := h.orderIDParam(w, r)
	if !ok {
		return
	}

	order, err := sess.Orders.Order(orderID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, order)
}

// PUT /api/v1/orders/{order_id}/status
func (h *OrdersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFor(w, r, h.shop)
	if !ok {
		return
	}
	orderID, ok := h.orderIDParam(w, r)
	if !ok {
		return
	}

	var req UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	order, err := sess.Orders.UpdateOrderStatus(orderID, req.Status)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("order status updated",
		zap.String("order_id", orderID),
		zap.String("status", order.Status.String()))
	h.respondJSON(w, http.StatusOK, order)
}

// POST /api/v1/orders/{order_id}/advance
func (h *OrdersHandler) Advance(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFor(w, r, h.shop)
	if !ok {
		return
	}
	orderID, ok := h.orderIDParam(w, r)
	if !ok {
		return
	}

	order, err := sess.Orders.Advance(orderID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, order)
}

// POST /api/v1/orders/{order_id}/cancel
func (h *OrdersHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFor(w, r, h.shop)
	if !ok {
		return
	}
	orderID, ok := h.orderIDParam(w, r)
	if !ok {
		return
	}

	order, err := sess.Orders.CancelOrder(orderID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("order cancelled", zap.String("order_id", orderID))
	h.respondJSON(w, http.StatusOK, order)
}

// PUT /api/v1/orders/{order_id}/tracking
func (h *OrdersHandler) UpdateTracking(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFor(w, r, h.shop)
	if !ok {
		return
	}
	orderID, ok := h.orderIDParam(w, r)
	if !ok {
		return
	}

	var req UpdateTrackingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	order, err := sess.Orders.UpdateOrderTracking(orderID, req.TrackingSteps)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, order)
}
