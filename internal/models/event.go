package models

// Event kinds published to Kafka.
const (
	EventUserRegistered = "user_registered"
	EventUserLoggedIn   = "user_logged_in"
	EventPostCreated    = "post_created"
	EventPostUpdated    = "post_updated"
	EventPostDeleted    = "post_deleted"
	EventMemoCreated    = "memo_created"
	EventMemoUpdated    = "memo_updated"
	EventMemoDeleted    = "memo_deleted"
)

// Event is a best-effort audit record published to Kafka.
type Event struct {
	EventID   string `json:"event_id"`          // uuid
	Kind      string `json:"kind"`              // one of the Event* constants
	UserID    int64  `json:"user_id,omitempty"` // acting user, if known
	PostID    int64  `json:"post_id,omitempty"` // affected post/memo, if any
	Timestamp int64  `json:"timestamp"`         // unix seconds
}
