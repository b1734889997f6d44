package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/parkjy76/gw-stock-chart/internal/logger"
	"github.com/parkjy76/gw-stock-chart/internal/models"
	"github.com/parkjy76/gw-stock-chart/internal/services"
)

// DiscussionLister lists discussion posts.
type DiscussionLister interface {
	ListDiscussions(ctx context.Context) ([]models.DiscussionPost, error)
}

// DiscussionCreator creates discussion posts.
type DiscussionCreator interface {
	CreateDiscussion(ctx context.Context, userID int64, title, content string) (*models.DiscussionPost, error)
}

// DiscussionGetter fetches a single discussion post.
type DiscussionGetter interface {
	GetDiscussion(ctx context.Context, postID int64) (*models.DiscussionPost, error)
}

// DiscussionUpdater rewrites discussion posts.
type DiscussionUpdater interface {
	UpdateDiscussion(ctx context.Context, postID, userID int64, title, content string) (*models.DiscussionPost, error)
}

// DiscussionDeleter removes discussion posts.
type DiscussionDeleter interface {
	DeleteDiscussion(ctx context.Context, postID, userID int64) error
}

// DiscussionSearcher searches discussion posts by substring.
type DiscussionSearcher interface {
	SearchDiscussionsByTitle(ctx context.Context, keyword string) ([]models.DiscussionPost, error)
	SearchDiscussionsByContent(ctx context.Context, keyword string) ([]models.DiscussionPost, error)
}

// PostRequest represents the JSON body for creating or updating a post.
// swagger:model PostRequest
type PostRequest struct {
	// Post title
	// required: true
	// example: AAPL earnings discussion
	Title string `json:"title"`

	// Post body
	// required: true
	// example: thoughts on the report?
	Content string `json:"content"`
}

// DiscussionListResponse wraps a list of discussion posts.
// swagger:model DiscussionListResponse
type DiscussionListResponse struct {
	Success bool                    `json:"success"`
	Posts   []models.DiscussionPost `json:"posts"`
}

// DiscussionResponse wraps a single discussion post.
// swagger:model DiscussionResponse
type DiscussionResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Post    *models.DiscussionPost `json:"post"`
}

// postIDParam parses the {id} route parameter.
func postIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

// NewListDiscussionsHandler returns an HTTP handler listing all discussion
// posts, newest first.
// @Summary List discussion posts
// @Tags board
// @Produce json
// @Success 200 {object} handlers.DiscussionListResponse "Posts, newest first"
// @Failure 400 {object} handlers.MessageResponse "Listing failed"
// @Router /api/board/discussion [get]
func NewListDiscussionsHandler(svc DiscussionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := svc.ListDiscussions(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list discussion posts", "err", err)
			writeFailure(w, http.StatusBadRequest, "failed to load posts")
			return
		}

		writeJSON(w, http.StatusOK, DiscussionListResponse{
			Success: true,
			Posts:   posts,
		})
	}
}

// NewCreateDiscussionHandler returns an HTTP handler creating a discussion
// post for the logged-in user.
// @Summary Create a discussion post
// @Tags board
// @Accept json
// @Produce json
// @Param postRequest body handlers.PostRequest true "Post request"
// @Success 200 {object} handlers.DiscussionResponse "Created post"
// @Failure 400 {object} handlers.MessageResponse "Login required / blank title or content"
// @Router /api/board/discussion [post]
func NewCreateDiscussionHandler(svc DiscussionCreator, principal PrincipalFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(r.Context())
		if !ok {
			writeFailure(w, http.StatusBadRequest, msgLoginRequired)
			return
		}

		var req PostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeFailure(w, http.StatusBadRequest, "invalid request body")
			return
		}

		post, err := svc.CreateDiscussion(r.Context(), p.UserID, req.Title, req.Content)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyTitle):
				writeFailure(w, http.StatusBadRequest, "please enter a title")
			case errors.Is(err, services.ErrEmptyContent):
				writeFailure(w, http.StatusBadRequest, "please enter content")
			default:
				logger.Log.Errorw("failed to create discussion post", "err", err)
				writeFailure(w, http.StatusBadRequest, "failed to create post")
			}
			return
		}

		writeJSON(w, http.StatusOK, DiscussionResponse{
			Success: true,
			Message: "post created",
			Post:    post,
		})
	}
}

// NewGetDiscussionHandler returns an HTTP handler fetching one discussion post.
// @Summary Get a discussion post
// @Tags board
// @Produce json
// @Param id path int true "Post id"
// @Success 200 {object} handlers.DiscussionResponse "Post"
// @Failure 400 {object} handlers.MessageResponse "Unknown id"
// @Router /api/board/discussion/{id} [get]
func NewGetDiscussionHandler(svc DiscussionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := postIDParam(r)
		if !ok {
			writeFailure(w, http.StatusBadRequest, "invalid post id")
			return
		}

		post, err := svc.GetDiscussion(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPostNotFound):
				writeFailure(w, http.StatusBadRequest, "post not found")
			default:
				logger.Log.Errorw("failed to get discussion post", "err", err)
				writeFailure(w, http.StatusBadRequest, "failed to load post")
			}
			return
		}

		writeJSON(w, http.StatusOK, DiscussionResponse{
			Success: true,
			Post:    post,
		})
	}
}

// NewUpdateDiscussionHandler returns an HTTP handler rewriting a discussion
// post. Any logged-in user may edit any post.
// @Summary Update a discussion post
// @Tags board
// @Accept json
// @Produce json
// @Param id path int true "Post id"
// @Param postRequest body handlers.PostRequest true "Post request"
// @Success 200 {object} handlers.DiscussionResponse "Updated post"
// @Failure 400 {object} handlers.MessageResponse "Login required / unknown id"
// @Router /api/board/discussion/{id} [put]
func NewUpdateDiscussionHandler(svc DiscussionUpdater, principal PrincipalFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(r.Context())
		if !ok {
			writeFailure(w, http.StatusBadRequest, msgLoginRequired)
			return
		}

		id, ok := postIDParam(r)
		if !ok {
			writeFailure(w, http.StatusBadRequest, "invalid post id")
			return
		}

		var req PostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeFailure(w, http.StatusBadRequest, "invalid request body")
			return
		}

		post, err := svc.UpdateDiscussion(r.Context(), id, p.UserID, req.Title, req.Content)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPostNotFound):
				writeFailure(w, http.StatusBadRequest, "post not found")
			default:
				logger.Log.Errorw("failed to update discussion post", "err", err)
				writeFailure(w, http.StatusBadRequest, "failed to update post")
			}
			return
		}

		writeJSON(w, http.StatusOK, DiscussionResponse{
			Success: true,
			Message: "post updated",
			Post:    post,
		})
	}
}

// NewDeleteDiscussionHandler returns an HTTP handler removing a discussion
// post. Any logged-in user may delete any post.
// @Summary Delete a discussion post
// @Tags board
// @Produce json
// @Param id path int true "Post id"
// @Success 200 {object} handlers.MessageResponse "Deleted"
// @Failure 400 {object} handlers.MessageResponse "Login required / unknown id"
// @Router /api/board/discussion/{id} [delete]
func NewDeleteDiscussionHandler(svc DiscussionDeleter, principal PrincipalFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(r.Context())
		if !ok {
			writeFailure(w, http.StatusBadRequest, msgLoginRequired)
			return
		}

		id, ok := postIDParam(r)
		if !ok {
			writeFailure(w, http.StatusBadRequest, "invalid post id")
			return
		}

		if err := svc.DeleteDiscussion(r.Context(), id, p.UserID); err != nil {
			switch {
			case errors.Is(err, services.ErrPostNotFound):
				writeFailure(w, http.StatusBadRequest, "post not found")
			default:
				logger.Log.Errorw("failed to delete discussion post", "err", err)
				writeFailure(w, http.StatusBadRequest, "failed to delete post")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{
			Success: true,
			Message: "post deleted",
		})
	}
}

// NewSearchDiscussionsHandler returns an HTTP handler searching discussion
// posts by title or content substring (case-sensitive), newest first.
// @Summary Search discussion posts
// @Tags board
// @Produce json
// @Param by query string false "Search field: title or content" default(title)
// @Param keyword query string true "Substring to match"
// @Success 200 {object} handlers.DiscussionListResponse "Matching posts"
// @Failure 400 {object} handlers.MessageResponse "Missing keyword / unknown search field"
// @Router /api/board/discussion/search [get]
func NewSearchDiscussionsHandler(svc DiscussionSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keyword := r.URL.Query().Get("keyword")
		if keyword == "" {
			writeFailure(w, http.StatusBadRequest, "keyword is required")
			return
		}

		var (
			posts []models.DiscussionPost
			err   error
		)
		switch by := r.URL.Query().Get("by"); by {
		case "", "title":
			posts, err = svc.SearchDiscussionsByTitle(r.Context(), keyword)
		case "content":
			posts, err = svc.SearchDiscussionsByContent(r.Context(), keyword)
		default:
			writeFailure(w, http.StatusBadRequest, "unknown search field")
			return
		}
		if err != nil {
			logger.Log.Errorw("failed to search discussion posts", "err", err)
			writeFailure(w, http.StatusBadRequest, "failed to search posts")
			return
		}

		writeJSON(w, http.StatusOK, DiscussionListResponse{
			Success: true,
			Posts:   posts,
		})
	}
}
