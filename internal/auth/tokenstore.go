// Package auth provides JWT issuance/verification and the token stores
// backing session revocation and password resets.
package auth

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"ripple/internal/observability"
)

// TokenStore holds short-lived tokens keyed by an opaque identifier. Entries
// expire after their TTL; Get never returns an expired entry.
type TokenStore interface {
	Put(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
	Sweep(ctx context.Context) error
}

// redisTokenStore keeps entries in Redis, letting the server lean on native
// key TTLs. Sweep is a no-op since Redis evicts expired keys itself.
type redisTokenStore struct {
	client *redis.Client
	prefix string
}

// NewRedisTokenStore returns a TokenStore backed by Redis. All keys are
// namespaced under the given prefix.
func NewRedisTokenStore(client *redis.Client, prefix string) TokenStore {
	return &redisTokenStore{client: client, prefix: prefix}
}

func (s *redisTokenStore) key(k string) string {
	return s.prefix + ":" + k
}

func (s *redisTokenStore) Put(ctx context.Context, key, value string, ttl time.Duration) error {
	err := s.client.Set(ctx, s.key(key), value, ttl).Err()
	if err != nil {
		observability.RedisErrors.WithLabelValues("set").Inc()
	}
	return err
}

func (s *redisTokenStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, s.key(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		observability.RedisErrors.WithLabelValues("get").Inc()
		return "", false, err
	}
	return val, true, nil
}

func (s *redisTokenStore) Delete(ctx context.Context, key string) error {
	err := s.client.Del(ctx, s.key(key)).Err()
	if err != nil {
		observability.RedisErrors.WithLabelValues("del").Inc()
	}
	return err
}

func (s *redisTokenStore) Sweep(context.Context) error {
	return nil
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// memoryTokenStore is the in-process fallback used when Redis is unavailable
// (and in tests). Expired entries are dropped lazily on Get and in bulk on
// Sweep.
type memoryTokenStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryTokenStore returns a TokenStore backed by an in-process map.
func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *memoryTokenStore) Put(_ context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{value: value, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *memoryTokenStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	if !ok {
		return "", false, nil
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, key)
		return "", false, nil
	}
	return entry.value, true, nil
}

func (s *memoryTokenStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

func (s *memoryTokenStore) Sweep(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for key, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, key)
		}
	}
	return nil
}
