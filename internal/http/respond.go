package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/therajusah/Ecommerce-app/internal/auth"
	"github.com/therajusah/Ecommerce-app/internal/catalog"
	"github.com/therajusah/Ecommerce-app/internal/checkout"
	"github.com/therajusah/Ecommerce-app/internal/store"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// responder writes JSON responses and logs failures to its logger. Handlers
// and middleware embed it.
type responder struct {
	logger *zap.Logger
}

func (rs responder) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		rs.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (rs responder) respondError(w http.ResponseWriter, status int, code, message string) {
	rs.respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleError maps domain errors to HTTP status codes.
func (rs responder) handleError(w http.ResponseWriter, err error) {
	var checkoutErr *checkout.ValidationError
	if errors.As(err, &checkoutErr) {
		rs.respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   checkoutErr.Title,
			Code:    "validation_failed",
			Details: checkoutErr.Message,
		})
		return
	}
	var authErr *auth.ValidationError
	if errors.As(err, &authErr) {
		rs.respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   authErr.Title,
			Code:    "validation_failed",
			Details: authErr.Message,
		})
		return
	}

	var httpStatus int
	var code string

	switch {
	case errors.Is(err, store.ErrOrderNotFound), errors.Is(err, catalog.ErrProductNotFound):
		httpStatus = http.StatusNotFound
		code = "not_found"
	case errors.Is(err, store.ErrInvalidTransition):
		httpStatus = http.StatusConflict
		code = "invalid_transition"
	case errors.Is(err, store.ErrOrderTerminal):
		httpStatus = http.StatusConflict
		code = "order_terminal"
	case errors.Is(err, store.ErrNotCancellable):
		httpStatus = http.StatusConflict
		code = "not_cancellable"
	case errors.Is(err, store.ErrInvalidStatus):
		httpStatus = http.StatusBadRequest
		code = "invalid_status"
	case errors.Is(err, store.ErrInvalidTracking):
		httpStatus = http.StatusBadRequest
		code = "invalid_tracking"
	case errors.Is(err, checkout.ErrEmptyCart):
		httpStatus = http.StatusBadRequest
		code = "empty_cart"
	case errors.Is(err, auth.ErrInvalidCredentials):
		httpStatus = http.StatusUnauthorized
		code = "invalid_credentials"
	case errors.Is(err, auth.ErrSessionNotFound):
		httpStatus = http.StatusUnauthorized
		code = "unauthorized"
	case errors.Is(err, context.DeadlineExceeded):
		httpStatus = http.StatusGatewayTimeout
		code = "timeout"
	default:
		rs.logger.Error("unhandled error", zap.Error(err))
		rs.respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	rs.respondError(w, httpStatus, code, err.Error())
}

func productIDParam(r *http.Request) (int64, bool) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || productID <= 0 {
		return 0, false
	}
	return productID, true
}
