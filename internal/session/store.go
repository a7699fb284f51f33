package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tripvista/internal/cache"
)

const sessionKeyPrefix = "session:"

// CookieName is the cookie carrying the opaque session token.
const CookieName = "session_token"

// Principal is the authenticated identity bound to a session token.
type Principal struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

// StoreInterface defines session storage operations. Expiry is owned here,
// not by the callers.
type StoreInterface interface {
	Create(ctx context.Context, userID uint, username string) (token string, err error)
	Get(ctx context.Context, token string) (*Principal, error)
	Delete(ctx context.Context, token string) error
}

// Store keeps sessions in Redis with a TTL.
type Store struct {
	cache *cache.Client
	ttl   time.Duration
}

// Ensure Store implements StoreInterface
var _ StoreInterface = (*Store)(nil)

// NewStore creates a new session store.
func NewStore(cache *cache.Client, ttl time.Duration) *Store {
	return &Store{cache: cache, ttl: ttl}
}

// Create issues a fresh opaque token for the principal.
func (s *Store) Create(ctx context.Context, userID uint, username string) (string, error) {
	payload, err := json.Marshal(Principal{UserID: userID, Username: username})
	if err != nil {
		return "", fmt.Errorf("marshal session data: %w", err)
	}

	token := uuid.NewString()
	if err := s.cache.Set(ctx, sessionKeyPrefix+token, payload, s.ttl); err != nil {
		return "", err
	}
	return token, nil
}

// Get resolves a token to its principal. An unknown or expired token returns
// (nil, nil): the caller is simply anonymous.
func (s *Store) Get(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, nil
	}
	data, err := s.cache.Get(ctx, sessionKeyPrefix+token)
	if err != nil || data == nil {
		return nil, nil
	}

	var p Principal
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal session data: %w", err)
	}
	return &p, nil
}

// Delete invalidates a token.
func (s *Store) Delete(ctx context.Context, token string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+token)
}
