package repo

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	ownErrors "kifu_vault/internal/errors"
)

const (
	sessionKeyPrefix = "session:"
	sessionTTL       = 30 * 24 * time.Hour
)

// SessionRepository keeps the per-visitor state in Redis: which session
// keys exist and which uploaded record each session has selected.
type SessionRepository struct {
	redis *redis.Client
}

func NewSessionRepository(redisClient *redis.Client) *SessionRepository {
	return &SessionRepository{redis: redisClient}
}

func (s *SessionRepository) StoreSession(ctx context.Context, sessionKey string) error {
	return s.redis.Set(ctx, sessionKeyPrefix+sessionKey, "", sessionTTL).Err()
}

func (s *SessionRepository) SessionExists(ctx context.Context, sessionKey string) (bool, error) {
	n, err := s.redis.Exists(ctx, sessionKeyPrefix+sessionKey).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SessionRepository) SetSelectedRecord(ctx context.Context, sessionKey string, recordID string) error {
	return s.redis.Set(ctx, sessionKeyPrefix+sessionKey, recordID, sessionTTL).Err()
}

func (s *SessionRepository) GetSelectedRecord(ctx context.Context, sessionKey string) (string, error) {
	recordID, err := s.redis.Get(ctx, sessionKeyPrefix+sessionKey).Result()
	if errors.Is(err, redis.Nil) || recordID == "" {
		return "", ownErrors.ErrNoSelectedRecord
	}
	return recordID, err
}
