package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/parkjy76/gw-stock-chart/internal/logger"
	"github.com/parkjy76/gw-stock-chart/internal/models"
)

const sessionKeyPrefix = "session:"

// SessionRepository stores session principals in Redis keyed by an opaque
// token, with server-side expiry.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepository creates a new repository with the given session TTL.
func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		client: client,
		ttl:    ttl,
	}
}

// Save stores the principal under a fresh token and returns the token.
func (r *SessionRepository) Save(ctx context.Context, principal models.SessionPrincipal) (string, error) {
	token := uuid.New().String()
	key := sessionKeyPrefix + token

	data, err := json.Marshal(principal)
	if err != nil {
		return "", err
	}

	err = r.client.Set(ctx, key, data, r.ttl).Err()

	logger.Log.Infow("session save",
		"key", key,
		"user_id", principal.UserID,
		"error", err,
	)

	if err != nil {
		return "", err
	}

	return token, nil
}

// Get resolves a token into its principal. Returns (nil, nil) when the token
// is unknown or expired.
func (r *SessionRepository) Get(ctx context.Context, token string) (*models.SessionPrincipal, error) {
	key := sessionKeyPrefix + token

	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("session get failed", "key", key, "error", err)
		return nil, err
	}

	var principal models.SessionPrincipal
	if err := json.Unmarshal([]byte(val), &principal); err != nil {
		logger.Log.Errorw("session payload corrupt", "key", key, "error", err)
		return nil, err
	}

	return &principal, nil
}

// Delete invalidates a token. Deleting an unknown token is not an error.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	key := sessionKeyPrefix + token
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("session delete",
		"key", key,
		"error", err,
	)

	return err
}
