package models

import "time"

// DiscussionPost represents a post on the public discussion board.
// Any authenticated user may edit or delete any discussion post.
type DiscussionPost struct {
	PostID    int64     `json:"postId" db:"post_id"`       // Primary key
	UserID    int64     `json:"userId" db:"user_id"`       // Author user id
	Title     string    `json:"title" db:"title"`          // Post title
	Content   string    `json:"content" db:"content"`      // Post body
	CreatedAt time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"` // Last update timestamp
}

// MemoPost represents a private memo. Reads and mutations are owner-only.
type MemoPost struct {
	PostID    int64     `json:"postId" db:"post_id"`       // Primary key
	UserID    int64     `json:"userId" db:"user_id"`       // Owner user id
	Title     string    `json:"title" db:"title"`          // Memo title
	Content   string    `json:"content" db:"content"`      // Memo body
	CreatedAt time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"` // Last update timestamp
}
