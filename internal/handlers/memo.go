package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/parkjy76/gw-stock-chart/internal/logger"
	"github.com/parkjy76/gw-stock-chart/internal/models"
	"github.com/parkjy76/gw-stock-chart/internal/services"
)

// MemoLister lists the requester's memos.
type MemoLister interface {
	ListMemos(ctx context.Context, userID int64) ([]models.MemoPost, error)
}

// MemoCreator creates memos.
type MemoCreator interface {
	CreateMemo(ctx context.Context, userID int64, title, content string) (*models.MemoPost, error)
}

// MemoGetter fetches a single memo, owner-only.
type MemoGetter interface {
	GetMemo(ctx context.Context, postID, userID int64) (*models.MemoPost, error)
}

// MemoUpdater rewrites memos, owner-only.
type MemoUpdater interface {
	UpdateMemo(ctx context.Context, postID, userID int64, title, content string) (*models.MemoPost, error)
}

// MemoDeleter removes memos, owner-only.
type MemoDeleter interface {
	DeleteMemo(ctx context.Context, postID, userID int64) error
}

// MemoSearcher searches the requester's memos by substring.
type MemoSearcher interface {
	SearchMemosByTitle(ctx context.Context, userID int64, keyword string) ([]models.MemoPost, error)
	SearchMemosByContent(ctx context.Context, userID int64, keyword string) ([]models.MemoPost, error)
}

// MemoListResponse wraps a list of memos.
// swagger:model MemoListResponse
type MemoListResponse struct {
	Success bool              `json:"success"`
	Memos   []models.MemoPost `json:"memos"`
}

// MemoResponse wraps a single memo.
// swagger:model MemoResponse
type MemoResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Memo    *models.MemoPost `json:"memo"`
}

// memoFailureMessage maps board service errors to envelope messages.
func memoFailureMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrMemoNotFound):
		return "memo not found"
	case errors.Is(err, services.ErrNotMemoOwner):
		return "only your own memos can be accessed"
	case errors.Is(err, services.ErrEmptyTitle):
		return "please enter a title"
	case errors.Is(err, services.ErrEmptyContent):
		return "please enter content"
	default:
		return ""
	}
}

// NewListMemosHandler returns an HTTP handler listing the requester's memos,
// newest first.
// @Summary List own memos
// @Tags board
// @Produce json
// @Success 200 {object} handlers.MemoListResponse "Memos, newest first"
// @Failure 400 {object} handlers.MessageResponse "Login required"
// @Router /api/board/memo [get]
func NewListMemosHandler(svc MemoLister, principal PrincipalFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(r.Context())
		if !ok {
			writeFailure(w, http.StatusBadRequest, msgLoginRequired)
			return
		}

		memos, err := svc.ListMemos(r.Context(), p.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list memos", "err", err)
			writeFailure(w, http.StatusBadRequest, "failed to load memos")
			return
		}

		writeJSON(w, http.StatusOK, MemoListResponse{
			Success: true,
			Memos:   memos,
		})
	}
}

// NewCreateMemoHandler returns an HTTP handler creating a memo owned by the
// requester.
// @Summary Create a memo
// @Tags board
// @Accept json
// @Produce json
// @Param postRequest body handlers.PostRequest true "Memo request"
// @Success 200 {object} handlers.MemoResponse "Created memo"
// @Failure 400 {object} handlers.MessageResponse "Login required / blank title or content"
// @Router /api/board/memo [post]
func NewCreateMemoHandler(svc MemoCreator, principal PrincipalFunc) http.HandlerFunc {
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

		memo, err := svc.CreateMemo(r.Context(), p.UserID, req.Title, req.Content)
		if err != nil {
			if msg := memoFailureMessage(err); msg != "" {
				writeFailure(w, http.StatusBadRequest, msg)
				return
			}
			logger.Log.Errorw("failed to create memo", "err", err)
			writeFailure(w, http.StatusBadRequest, "failed to create memo")
			return
		}

		writeJSON(w, http.StatusOK, MemoResponse{
			Success: true,
			Message: "memo created",
			Memo:    memo,
		})
	}
}

// NewGetMemoHandler returns an HTTP handler fetching one memo, owner-only.
// @Summary Get a memo
// @Tags board
// @Produce json
// @Param id path int true "Memo id"
// @Success 200 {object} handlers.MemoResponse "Memo"
// @Failure 400 {object} handlers.MessageResponse "Login required / unknown id / foreign memo"
// @Router /api/board/memo/{id} [get]
func NewGetMemoHandler(svc MemoGetter, principal PrincipalFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(r.Context())
		if !ok {
			writeFailure(w, http.StatusBadRequest, msgLoginRequired)
			return
		}

		id, ok := postIDParam(r)
		if !ok {
			writeFailure(w, http.StatusBadRequest, "invalid memo id")
			return
		}

		memo, err := svc.GetMemo(r.Context(), id, p.UserID)
		if err != nil {
			if msg := memoFailureMessage(err); msg != "" {
				writeFailure(w, http.StatusBadRequest, msg)
				return
			}
			logger.Log.Errorw("failed to get memo", "err", err)
			writeFailure(w, http.StatusBadRequest, "failed to load memo")
			return
		}

		writeJSON(w, http.StatusOK, MemoResponse{
			Success: true,
			Memo:    memo,
		})
	}
}

// NewUpdateMemoHandler returns an HTTP handler rewriting a memo, owner-only.
// @Summary Update a memo
// @Tags board
// @Accept json
// @Produce json
// @Param id path int true "Memo id"
// @Param postRequest body handlers.PostRequest true "Memo request"
// @Success 200 {object} handlers.MemoResponse "Updated memo"
// @Failure 400 {object} handlers.MessageResponse "Login required / unknown id / foreign memo"
// @Router /api/board/memo/{id} [put]
func NewUpdateMemoHandler(svc MemoUpdater, principal PrincipalFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(r.Context())
		if !ok {
			writeFailure(w, http.StatusBadRequest, msgLoginRequired)
			return
		}

		id, ok := postIDParam(r)
		if !ok {
			writeFailure(w, http.StatusBadRequest, "invalid memo id")
			return
		}

		var req PostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeFailure(w, http.StatusBadRequest, "invalid request body")
			return
		}

		memo, err := svc.UpdateMemo(r.Context(), id, p.UserID, req.Title, req.Content)
		if err != nil {
			if msg := memoFailureMessage(err); msg != "" {
				writeFailure(w, http.StatusBadRequest, msg)
				return
			}
			logger.Log.Errorw("failed to update memo", "err", err)
			writeFailure(w, http.StatusBadRequest, "failed to update memo")
			return
		}

		writeJSON(w, http.StatusOK, MemoResponse{
			Success: true,
			Message: "memo updated",
			Memo:    memo,
		})
	}
}

// NewDeleteMemoHandler returns an HTTP handler removing a memo, owner-only.
// @Summary Delete a memo
// @Tags board
// @Produce json
// @Param id path int true "Memo id"
// @Success 200 {object} handlers.MessageResponse "Deleted"
// @Failure 400 {object} handlers.MessageResponse "Login required / unknown id / foreign memo"
// @Router /api/board/memo/{id} [delete]
func NewDeleteMemoHandler(svc MemoDeleter, principal PrincipalFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(r.Context())
		if !ok {
			writeFailure(w, http.StatusBadRequest, msgLoginRequired)
			return
		}

		id, ok := postIDParam(r)
		if !ok {
			writeFailure(w, http.StatusBadRequest, "invalid memo id")
			return
		}

		if err := svc.DeleteMemo(r.Context(), id, p.UserID); err != nil {
			if msg := memoFailureMessage(err); msg != "" {
				writeFailure(w, http.StatusBadRequest, msg)
				return
			}
			logger.Log.Errorw("failed to delete memo", "err", err)
			writeFailure(w, http.StatusBadRequest, "failed to delete memo")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{
			Success: true,
			Message: "memo deleted",
		})
	}
}

// NewSearchMemosHandler returns an HTTP handler searching the requester's
// memos by title or content substring (case-sensitive), newest first.
// @Summary Search own memos
// @Tags board
// @Produce json
// @Param by query string false "Search field: title or content" default(title)
// @Param keyword query string true "Substring to match"
// @Success 200 {object} handlers.MemoListResponse "Matching memos"
// @Failure 400 {object} handlers.MessageResponse "Login required / missing keyword"
// @Router /api/board/memo/search [get]
func NewSearchMemosHandler(svc MemoSearcher, principal PrincipalFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(r.Context())
		if !ok {
			writeFailure(w, http.StatusBadRequest, msgLoginRequired)
			return
		}

		keyword := r.URL.Query().Get("keyword")
		if keyword == "" {
			writeFailure(w, http.StatusBadRequest, "keyword is required")
			return
		}

		var (
			memos []models.MemoPost
			err   error
		)
		switch by := r.URL.Query().Get("by"); by {
		case "", "title":
			memos, err = svc.SearchMemosByTitle(r.Context(), p.UserID, keyword)
		case "content":
			memos, err = svc.SearchMemosByContent(r.Context(), p.UserID, keyword)
		default:
			writeFailure(w, http.StatusBadRequest, "unknown search field")
			return
		}
		if err != nil {
			logger.Log.Errorw("failed to search memos", "err", err)
			writeFailure(w, http.StatusBadRequest, "failed to search memos")
			return
		}

		writeJSON(w, http.StatusOK, MemoListResponse{
			Success: true,
			Memos:   memos,
		})
	}
}
