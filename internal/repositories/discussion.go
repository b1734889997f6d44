package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/parkjy76/gw-stock-chart/internal/logger"
	"github.com/parkjy76/gw-stock-chart/internal/models"
)

const discussionColumns = "post_id, user_id, title, content, created_at, updated_at"

type DiscussionReadRepository struct {
	db *sqlx.DB
}

func NewDiscussionReadRepository(db *sqlx.DB) *DiscussionReadRepository {
	return &DiscussionReadRepository{db: db}
}

// List returns all discussion posts, newest first.
func (r *DiscussionReadRepository) List(ctx context.Context) ([]models.DiscussionPost, error) {
	const query = `
		SELECT ` + discussionColumns + `
		FROM discussion_posts
		ORDER BY created_at DESC
	`

	posts := []models.DiscussionPost{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &posts, query)

	logger.Log.Infow("discussion select",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(posts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return posts, nil
}

// GetByID returns the post with the given id, or (nil, nil) when absent.
func (r *DiscussionReadRepository) GetByID(ctx context.Context, postID int64) (*models.DiscussionPost, error) {
	const query = `
		SELECT ` + discussionColumns + `
		FROM discussion_posts
		WHERE post_id = $1
	`

	var post models.DiscussionPost
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &post, query, postID)

	logger.Log.Infow("discussion select",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{postID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// SearchByTitle returns posts whose title contains the keyword, newest first.
// The match is case-sensitive.
func (r *DiscussionReadRepository) SearchByTitle(ctx context.Context, keyword string) ([]models.DiscussionPost, error) {
	const query = `
		SELECT ` + discussionColumns + `
		FROM discussion_posts
		WHERE title LIKE '%' || $1 || '%'
		ORDER BY created_at DESC
	`
	return r.search(ctx, query, keyword)
}

// SearchByContent returns posts whose content contains the keyword, newest first.
func (r *DiscussionReadRepository) SearchByContent(ctx context.Context, keyword string) ([]models.DiscussionPost, error) {
	const query = `
		SELECT ` + discussionColumns + `
		FROM discussion_posts
		WHERE content LIKE '%' || $1 || '%'
		ORDER BY created_at DESC
	`
	return r.search(ctx, query, keyword)
}

func (r *DiscussionReadRepository) search(ctx context.Context, query, keyword string) ([]models.DiscussionPost, error) {
	posts := []models.DiscussionPost{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &posts, query, keyword)

	logger.Log.Infow("discussion search",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{keyword},
		"rows", len(posts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return posts, nil
}

type DiscussionWriteRepository struct {
	db *sqlx.DB
}

func NewDiscussionWriteRepository(db *sqlx.DB) *DiscussionWriteRepository {
	return &DiscussionWriteRepository{db: db}
}

// Save inserts a new discussion post and returns the stored row.
func (r *DiscussionWriteRepository) Save(ctx context.Context, userID int64, title, content string) (*models.DiscussionPost, error) {
	const query = `
		INSERT INTO discussion_posts (user_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + discussionColumns

	var post models.DiscussionPost
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &post, query, userID, title, content)

	logger.Log.Infow("discussion insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, title},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &post, nil
}

// Update rewrites title and content of an existing post and returns the
// updated row, or (nil, nil) when the id is absent.
func (r *DiscussionWriteRepository) Update(ctx context.Context, postID int64, title, content string) (*models.DiscussionPost, error) {
	const query = `
		UPDATE discussion_posts
		SET title = $2, content = $3, updated_at = NOW()
		WHERE post_id = $1
		RETURNING ` + discussionColumns

	var post models.DiscussionPost
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &post, query, postID, title, content)

	logger.Log.Infow("discussion update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{postID, title},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// Delete removes a post. Returns false when the id was absent.
func (r *DiscussionWriteRepository) Delete(ctx context.Context, postID int64) (bool, error) {
	const query = `DELETE FROM discussion_posts WHERE post_id = $1`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, postID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("discussion delete",
		"query", query,
		"args", []any{postID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
