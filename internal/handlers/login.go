package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/parkjy76/gw-stock-chart/internal/logger"
	"github.com/parkjy76/gw-stock-chart/internal/middlewares"
	"github.com/parkjy76/gw-stock-chart/internal/models"
	"github.com/parkjy76/gw-stock-chart/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (*models.UserDB, error)
}

// SessionSaver establishes a new session and returns its token.
type SessionSaver interface {
	Save(ctx context.Context, principal models.SessionPrincipal) (string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// example: alice
	Username string `json:"username"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Operation outcome
	// example: true
	Success bool `json:"success"`

	// Human-readable message
	// example: login successful
	Message string `json:"message"`

	// Logged-in username
	// example: alice
	Username string `json:"username,omitempty"`
}

// NewLoginHandler returns an HTTP handler for user login. On success it
// establishes a server-side session and sets the session cookie.
// @Summary User login
// @Description Validates credentials and starts a cookie session
// @Tags user
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Session established"
// @Failure 400 {object} handlers.MessageResponse "Unknown user / wrong password / invalid request"
// @Router /api/user/login [post]
func NewLoginHandler(svc Loginer, sessions SessionSaver, sessionTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeFailure(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeFailure(w, http.StatusBadRequest, "user not found")
			case errors.Is(err, services.ErrInvalidCredentials):
				writeFailure(w, http.StatusBadRequest, "password does not match")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeFailure(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		token, err := sessions.Save(r.Context(), models.SessionPrincipal{
			UserID:   user.UserID,
			Username: user.Username,
		})
		if err != nil {
			logger.Log.Errorw("failed to establish session", "err", err)
			writeFailure(w, http.StatusInternalServerError, "internal server error")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middlewares.SessionCookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   int(sessionTTL.Seconds()),
		})

		writeJSON(w, http.StatusOK, LoginResponse{
			Success:  true,
			Message:  "login successful",
			Username: user.Username,
		})
	}
}
