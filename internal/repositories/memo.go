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

const memoColumns = "post_id, user_id, title, content, created_at, updated_at"

type MemoReadRepository struct {
	db *sqlx.DB
}

func NewMemoReadRepository(db *sqlx.DB) *MemoReadRepository {
	return &MemoReadRepository{db: db}
}

// ListByUser returns the user's memos, newest first.
func (r *MemoReadRepository) ListByUser(ctx context.Context, userID int64) ([]models.MemoPost, error) {
	const query = `
		SELECT ` + memoColumns + `
		FROM memo_posts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	memos := []models.MemoPost{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &memos, query, userID)

	logger.Log.Infow("memo select",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"rows", len(memos),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return memos, nil
}

// GetByID returns the memo with the given id regardless of owner, or
// (nil, nil) when absent. Ownership is enforced by the board service so the
// caller can distinguish a missing memo from a foreign one.
func (r *MemoReadRepository) GetByID(ctx context.Context, postID int64) (*models.MemoPost, error) {
	const query = `
		SELECT ` + memoColumns + `
		FROM memo_posts
		WHERE post_id = $1
	`

	var memo models.MemoPost
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &memo, query, postID)

	logger.Log.Infow("memo select",
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

	return &memo, nil
}

// SearchByTitle returns the user's memos whose title contains the keyword,
// newest first. The match is case-sensitive.
func (r *MemoReadRepository) SearchByTitle(ctx context.Context, userID int64, keyword string) ([]models.MemoPost, error) {
	const query = `
		SELECT ` + memoColumns + `
		FROM memo_posts
		WHERE user_id = $1 AND title LIKE '%' || $2 || '%'
		ORDER BY created_at DESC
	`
	return r.search(ctx, query, userID, keyword)
}

// SearchByContent returns the user's memos whose content contains the keyword,
// newest first.
func (r *MemoReadRepository) SearchByContent(ctx context.Context, userID int64, keyword string) ([]models.MemoPost, error) {
	const query = `
		SELECT ` + memoColumns + `
		FROM memo_posts
		WHERE user_id = $1 AND content LIKE '%' || $2 || '%'
		ORDER BY created_at DESC
	`
	return r.search(ctx, query, userID, keyword)
}

func (r *MemoReadRepository) search(ctx context.Context, query string, userID int64, keyword string) ([]models.MemoPost, error) {
	memos := []models.MemoPost{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &memos, query, userID, keyword)

	logger.Log.Infow("memo search",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, keyword},
		"rows", len(memos),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return memos, nil
}

type MemoWriteRepository struct {
	db *sqlx.DB
}

func NewMemoWriteRepository(db *sqlx.DB) *MemoWriteRepository {
	return &MemoWriteRepository{db: db}
}

// Save inserts a new memo and returns the stored row.
func (r *MemoWriteRepository) Save(ctx context.Context, userID int64, title, content string) (*models.MemoPost, error) {
	const query = `
		INSERT INTO memo_posts (user_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + memoColumns

	var memo models.MemoPost
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &memo, query, userID, title, content)

	logger.Log.Infow("memo insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, title},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &memo, nil
}

// Update rewrites title and content of an existing memo and returns the
// updated row, or (nil, nil) when the id is absent.
func (r *MemoWriteRepository) Update(ctx context.Context, postID int64, title, content string) (*models.MemoPost, error) {
	const query = `
		UPDATE memo_posts
		SET title = $2, content = $3, updated_at = NOW()
		WHERE post_id = $1
		RETURNING ` + memoColumns

	var memo models.MemoPost
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &memo, query, postID, title, content)

	logger.Log.Infow("memo update",
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

	return &memo, nil
}

// Delete removes a memo. Returns false when the id was absent.
func (r *MemoWriteRepository) Delete(ctx context.Context, postID int64) (bool, error) {
	const query = `DELETE FROM memo_posts WHERE post_id = $1`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, postID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("memo delete",
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
