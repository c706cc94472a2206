package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/uzmpro/event-panel-api/internal/models"
)

// Store is the server-held mapping from a session token to the logged-in
// identity. A missing or expired token is not an error: Load returns nil.
type Store interface {
	Save(ctx context.Context, token string, identity models.SessionIdentity, ttl time.Duration) error
	Load(ctx context.Context, token string) (*models.SessionIdentity, error)
	Delete(ctx context.Context, token string) error
}

const redisKeyPrefix = "session:"

// RedisStore keeps session identities in Redis with a TTL, so sessions
// survive process restarts but expire on their own.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps a Redis client as a session store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, token string, identity models.SessionIdentity, ttl time.Duration) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("marshal session identity: %w", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+token, payload, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, token string) (*models.SessionIdentity, error) {
	payload, err := s.client.Get(ctx, redisKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	var identity models.SessionIdentity
	if err := json.Unmarshal(payload, &identity); err != nil {
		return nil, fmt.Errorf("unmarshal session identity: %w", err)
	}
	return &identity, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

type memoryEntry struct {
	identity  models.SessionIdentity
	expiresAt time.Time
}

// MemoryStore is an in-process session store for development and tests.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

// NewMemoryStore builds an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Save(ctx context.Context, token string, identity models.SessionIdentity, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = memoryEntry{identity: identity, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Load(ctx context.Context, token string) (*models.SessionIdentity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[token]
	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, token)
		return nil, nil
	}
	identity := entry.identity
	return &identity, nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}
