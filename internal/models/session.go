package models

// SessionPrincipal is the authenticated identity bound to a client's
// session token.
type SessionPrincipal struct {
	UserID   int64  `json:"userId"`   // Authenticated user id
	Username string `json:"username"` // Authenticated username
}
