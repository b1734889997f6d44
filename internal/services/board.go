package services

import (
	"context"
	"errors"
	"strings"

	"github.com/parkjy76/gw-stock-chart/internal/logger"
	"github.com/parkjy76/gw-stock-chart/internal/models"
)

// Error variables
var (
	ErrEmptyTitle   = errors.New("title must not be empty")
	ErrEmptyContent = errors.New("content must not be empty")
	ErrPostNotFound = errors.New("post not found")
	ErrMemoNotFound = errors.New("memo not found")
	ErrNotMemoOwner = errors.New("memo belongs to another user")
)

// DiscussionReader defines read operations for discussion posts.
type DiscussionReader interface {
	List(ctx context.Context) ([]models.DiscussionPost, error)
	GetByID(ctx context.Context, postID int64) (*models.DiscussionPost, error)
	SearchByTitle(ctx context.Context, keyword string) ([]models.DiscussionPost, error)
	SearchByContent(ctx context.Context, keyword string) ([]models.DiscussionPost, error)
}

// DiscussionWriter defines write operations for discussion posts.
type DiscussionWriter interface {
	Save(ctx context.Context, userID int64, title, content string) (*models.DiscussionPost, error)
	Update(ctx context.Context, postID int64, title, content string) (*models.DiscussionPost, error)
	Delete(ctx context.Context, postID int64) (bool, error)
}

// MemoReader defines read operations for memos.
type MemoReader interface {
	ListByUser(ctx context.Context, userID int64) ([]models.MemoPost, error)
	GetByID(ctx context.Context, postID int64) (*models.MemoPost, error)
	SearchByTitle(ctx context.Context, userID int64, keyword string) ([]models.MemoPost, error)
	SearchByContent(ctx context.Context, userID int64, keyword string) ([]models.MemoPost, error)
}

// MemoWriter defines write operations for memos.
type MemoWriter interface {
	Save(ctx context.Context, userID int64, title, content string) (*models.MemoPost, error)
	Update(ctx context.Context, postID int64, title, content string) (*models.MemoPost, error)
	Delete(ctx context.Context, postID int64) (bool, error)
}

// BoardService handles discussion posts and private memos. Discussion posts
// are editable by any authenticated user; memos are owner-only.
type BoardService struct {
	discussionReader DiscussionReader
	discussionWriter DiscussionWriter
	memoReader       MemoReader
	memoWriter       MemoWriter
	kafkaWriter      KafkaWriter
}

// NewBoardService creates a new BoardService.
func NewBoardService(
	discussionReader DiscussionReader,
	discussionWriter DiscussionWriter,
	memoReader MemoReader,
	memoWriter MemoWriter,
	kafkaWriter KafkaWriter,
) *BoardService {
	return &BoardService{
		discussionReader: discussionReader,
		discussionWriter: discussionWriter,
		memoReader:       memoReader,
		memoWriter:       memoWriter,
		kafkaWriter:      kafkaWriter,
	}
}

// validatePost rejects titles and contents that are empty after trimming.
func validatePost(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	return nil
}

// ListDiscussions returns all discussion posts, newest first.
func (svc *BoardService) ListDiscussions(ctx context.Context) ([]models.DiscussionPost, error) {
	return svc.discussionReader.List(ctx)
}

// CreateDiscussion creates a discussion post for the given author.
func (svc *BoardService) CreateDiscussion(ctx context.Context, userID int64, title, content string) (*models.DiscussionPost, error) {
	if err := validatePost(title, content); err != nil {
		return nil, err
	}

	post, err := svc.discussionWriter.Save(ctx, userID, title, content)
	if err != nil {
		logger.Log.Errorw("failed to save discussion post", "user_id", userID, "error", err)
		return nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, models.EventPostCreated, userID, post.PostID)

	return post, nil
}

// GetDiscussion returns a single discussion post.
func (svc *BoardService) GetDiscussion(ctx context.Context, postID int64) (*models.DiscussionPost, error) {
	post, err := svc.discussionReader.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// UpdateDiscussion rewrites a discussion post. No ownership check: any
// authenticated user may edit any discussion post.
func (svc *BoardService) UpdateDiscussion(ctx context.Context, postID, userID int64, title, content string) (*models.DiscussionPost, error) {
	post, err := svc.discussionWriter.Update(ctx, postID, title, content)
	if err != nil {
		logger.Log.Errorw("failed to update discussion post", "post_id", postID, "error", err)
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	publishEvent(ctx, svc.kafkaWriter, models.EventPostUpdated, userID, postID)

	return post, nil
}

// DeleteDiscussion removes a discussion post. No ownership check.
func (svc *BoardService) DeleteDiscussion(ctx context.Context, postID, userID int64) error {
	ok, err := svc.discussionWriter.Delete(ctx, postID)
	if err != nil {
		logger.Log.Errorw("failed to delete discussion post", "post_id", postID, "error", err)
		return err
	}
	if !ok {
		return ErrPostNotFound
	}

	publishEvent(ctx, svc.kafkaWriter, models.EventPostDeleted, userID, postID)

	return nil
}

// SearchDiscussionsByTitle returns posts whose title contains the keyword.
func (svc *BoardService) SearchDiscussionsByTitle(ctx context.Context, keyword string) ([]models.DiscussionPost, error) {
	return svc.discussionReader.SearchByTitle(ctx, keyword)
}

// SearchDiscussionsByContent returns posts whose content contains the keyword.
func (svc *BoardService) SearchDiscussionsByContent(ctx context.Context, keyword string) ([]models.DiscussionPost, error) {
	return svc.discussionReader.SearchByContent(ctx, keyword)
}

// ListMemos returns the requester's memos, newest first.
func (svc *BoardService) ListMemos(ctx context.Context, userID int64) ([]models.MemoPost, error) {
	return svc.memoReader.ListByUser(ctx, userID)
}

// CreateMemo creates a memo owned by the requester.
func (svc *BoardService) CreateMemo(ctx context.Context, userID int64, title, content string) (*models.MemoPost, error) {
	if err := validatePost(title, content); err != nil {
		return nil, err
	}

	memo, err := svc.memoWriter.Save(ctx, userID, title, content)
	if err != nil {
		logger.Log.Errorw("failed to save memo", "user_id", userID, "error", err)
		return nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, models.EventMemoCreated, userID, memo.PostID)

	return memo, nil
}

// GetMemo returns a single memo, owner-only.
func (svc *BoardService) GetMemo(ctx context.Context, postID, userID int64) (*models.MemoPost, error) {
	memo, err := svc.memoReader.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if memo == nil {
		return nil, ErrMemoNotFound
	}
	if memo.UserID != userID {
		return nil, ErrNotMemoOwner
	}
	return memo, nil
}

// UpdateMemo rewrites a memo, owner-only.
func (svc *BoardService) UpdateMemo(ctx context.Context, postID, userID int64, title, content string) (*models.MemoPost, error) {
	memo, err := svc.memoReader.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if memo == nil {
		return nil, ErrMemoNotFound
	}
	if memo.UserID != userID {
		return nil, ErrNotMemoOwner
	}

	updated, err := svc.memoWriter.Update(ctx, postID, title, content)
	if err != nil {
		logger.Log.Errorw("failed to update memo", "post_id", postID, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrMemoNotFound
	}

	publishEvent(ctx, svc.kafkaWriter, models.EventMemoUpdated, userID, postID)

	return updated, nil
}

// DeleteMemo removes a memo, owner-only.
func (svc *BoardService) DeleteMemo(ctx context.Context, postID, userID int64) error {
	memo, err := svc.memoReader.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if memo == nil {
		return ErrMemoNotFound
	}
	if memo.UserID != userID {
		return ErrNotMemoOwner
	}

	ok, err := svc.memoWriter.Delete(ctx, postID)
	if err != nil {
		logger.Log.Errorw("failed to delete memo", "post_id", postID, "error", err)
		return err
	}
	if !ok {
		return ErrMemoNotFound
	}

	publishEvent(ctx, svc.kafkaWriter, models.EventMemoDeleted, userID, postID)

	return nil
}

// SearchMemosByTitle returns the requester's memos whose title contains the keyword.
func (svc *BoardService) SearchMemosByTitle(ctx context.Context, userID int64, keyword string) ([]models.MemoPost, error) {
	return svc.memoReader.SearchByTitle(ctx, userID, keyword)
}

// SearchMemosByContent returns the requester's memos whose content contains the keyword.
func (svc *BoardService) SearchMemosByContent(ctx context.Context, userID int64, keyword string) ([]models.MemoPost, error) {
	return svc.memoReader.SearchByContent(ctx, userID, keyword)
}
