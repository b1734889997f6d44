package middlewares

import (
	"context"
	"net/http"

	"github.com/parkjy76/gw-stock-chart/internal/logger"
	"github.com/parkjy76/gw-stock-chart/internal/models"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "chart_session"

// SessionReader resolves a session token into a principal.
// A missing or expired session yields (nil, nil).
type SessionReader interface {
	Get(ctx context.Context, token string) (*models.SessionPrincipal, error)
}

type principalKeyType struct{}

var principalKey = principalKeyType{}

// SessionMiddleware resolves the session cookie into a principal stored in the
// request context. It never rejects a request: handlers decide whether a
// principal is required.
func SessionMiddleware(sessions SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
				principal, err := sessions.Get(ctx, c.Value)
				if err != nil {
					logger.Log.Errorw("failed to resolve session", "error", err)
				} else if principal != nil {
					ctx = context.WithValue(ctx, principalKey, principal)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFromContext returns the session principal set by SessionMiddleware.
func PrincipalFromContext(ctx context.Context) (*models.SessionPrincipal, bool) {
	principal, ok := ctx.Value(principalKey).(*models.SessionPrincipal)
	return principal, ok
}
