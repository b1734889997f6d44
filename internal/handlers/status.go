package handlers

import (
	"net/http"
)

// StatusResponse reports the login state of the calling client.
// swagger:model StatusResponse
type StatusResponse struct {
	// Whether a valid session is present
	// example: true
	IsLoggedIn bool `json:"isLoggedIn"`

	// Logged-in username, omitted when not logged in
	// example: alice
	Username string `json:"username,omitempty"`
}

// NewStatusHandler returns an HTTP handler reporting the session state.
// @Summary Login status
// @Description Reports whether the calling client holds a valid session
// @Tags user
// @Produce json
// @Success 200 {object} handlers.StatusResponse "Login state"
// @Router /api/user/status [get]
func NewStatusHandler(principal PrincipalFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p, ok := principal(r.Context()); ok {
			writeJSON(w, http.StatusOK, StatusResponse{
				IsLoggedIn: true,
				Username:   p.Username,
			})
			return
		}

		writeJSON(w, http.StatusOK, StatusResponse{IsLoggedIn: false})
	}
}
