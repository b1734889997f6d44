package handlers

import (
	"context"
	"net/http"

	"github.com/parkjy76/gw-stock-chart/internal/logger"
	"github.com/parkjy76/gw-stock-chart/internal/middlewares"
)

// SessionDeleter invalidates a session token.
type SessionDeleter interface {
	Delete(ctx context.Context, token string) error
}

// NewLogoutHandler returns an HTTP handler that clears the session. Logout is
// idempotent: a missing or unknown session still succeeds.
// @Summary User logout
// @Description Invalidates the server-side session and expires the cookie
// @Tags user
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Logged out"
// @Router /api/user/logout [post]
func NewLogoutHandler(sessions SessionDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(middlewares.SessionCookieName); err == nil && c.Value != "" {
			if err := sessions.Delete(r.Context(), c.Value); err != nil {
				logger.Log.Errorw("failed to delete session", "err", err)
			}
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middlewares.SessionCookieName,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			MaxAge:   -1,
		})

		writeJSON(w, http.StatusOK, MessageResponse{
			Success: true,
			Message: "logged out",
		})
	}
}
