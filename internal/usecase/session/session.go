package session

import (
	"context"

	"kifu_vault/internal/random"
)

const keyLength = 64

type SessionStore interface {
	StoreSession(ctx context.Context, sessionKey string) error
	SessionExists(ctx context.Context, sessionKey string) (bool, error)
}

// SessionUseCase hands out anonymous visitor sessions. There are no
// accounts: a session key only scopes the upload list and the selection.
type SessionUseCase struct {
	store SessionStore
}

func NewSessionUseCase(store SessionStore) *SessionUseCase {
	return &SessionUseCase{store: store}
}

// Ensure returns a valid session key, reusing the provided one when it is
// still known and minting a fresh one otherwise. The second result tells
// the caller whether a new cookie has to be set.
func (s *SessionUseCase) Ensure(ctx context.Context, existingKey string) (sessionKey string, created bool, err error) {
	if existingKey != "" {
		exists, err := s.store.SessionExists(ctx, existingKey)
		if err != nil {
			return "", false, err
		}
		if exists {
			return existingKey, false, nil
		}
	}

	sessionKey = random.RandString(keyLength)
	if err = s.store.StoreSession(ctx, sessionKey); err != nil {
		return "", false, err
	}
	return sessionKey, true, nil
}
