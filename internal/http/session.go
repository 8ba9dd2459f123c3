package http

import (
	"net/http"

	"github.com/therajusah/Ecommerce-app/internal/app"
)

// sessionFor resolves the caller's session, writing 401 when the request is
// not authenticated.
func (rs responder) sessionFor(w http.ResponseWriter, r *http.Request, shop *app.Shop) (*app.Session, bool) {
	user, ok := userFromContext(r.Context())
	if !ok {
		rs.respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return nil, false
	}
	return shop.Session(user.ID), true
}
