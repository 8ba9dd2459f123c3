package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/therajusah/Ecommerce-app/internal/auth"
)

type contextKey string

const (
	userKey  contextKey = "user"
	tokenKey contextKey = "token"
)

// AuthMiddleware resolves the bearer token to a user. Requests without a
// valid session are rejected with 401.
func AuthMiddleware(authn *auth.Authenticator, logger *zap.Logger) func(http.Handler) http.Handler {
	rs := responder{logger: logger}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				rs.respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
				return
			}
			user, err := authn.Authenticate(token)
			if err != nil {
				rs.respondError(w, http.StatusUnauthorized, "unauthorized", "invalid or expired session")
				return
			}

			ctx := withUser(r.Context(), user, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func withUser(ctx context.Context, user auth.User, token string) context.Context {
	ctx = context.WithValue(ctx, userKey, user)
	return context.WithValue(ctx, tokenKey, token)
}

func userFromContext(ctx context.Context) (auth.User, bool) {
	user, ok := ctx.Value(userKey).(auth.User)
	return user, ok
}

func tokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

// RequestLogger logs one line per request.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			fields := []zap.Field{
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
			}
			if sc := trace.SpanContextFromContext(r.Context()); sc.HasTraceID() {
				fields = append(fields, zap.String("trace_id", sc.TraceID().String()))
			}
			logger.Info("request", fields...)
		})
	}
}

// RouteSpanName renames the server span after the matched chi route, so
// "/api/v1/orders/ORD-1" and "/api/v1/orders/ORD-2" share one span name.
func RouteSpanName(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)

		rctx := chi.RouteContext(r.Context())
		if rctx == nil {
			return
		}
		if pattern := rctx.RoutePattern(); pattern != "" {
			trace.SpanFromContext(r.Context()).SetName(r.Method + " " + pattern)
		}
	})
}
