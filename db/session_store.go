// console/db/session_store.go
package db

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	logger "github.com/dev-mohitbeniwal/aptmgr/console/logging"
)

// Keys under which the auth session is persisted.
const (
	TokenKey = "auth-token"
	UserKey  = "auth-user"
)

// SessionStore is a small string key/value store for the auth session.
// Get reports ok=false for a missing key.
type SessionStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, keys ...string) error
}

type MemorySessionStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{values: make(map[string]string)}
}

func (m *MemorySessionStore) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemorySessionStore) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemorySessionStore) Remove(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}

// RedisSessionStore keeps AES-GCM encrypted session values in Redis under a
// per-console namespace so several console instances share one login.
type RedisSessionStore struct {
	client    *redis.Client
	namespace string
	ttl       time.Duration
}

func NewRedisSessionStore(client *redis.Client, namespace string, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, namespace: namespace, ttl: ttl}
}

func (r *RedisSessionStore) key(k string) string {
	return fmt.Sprintf("session:%s:%s", r.namespace, k)
}

func (r *RedisSessionStore) Get(ctx context.Context, key string) (string, bool, error) {
	stored, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	} else if err != nil {
		return "", false, fmt.Errorf("%w: get %s: %v", apt_errors.ErrSessionStoreOperation, key, err)
	}

	value, err := openString(stored)
	if err != nil {
		return "", false, fmt.Errorf("%w: %s: %v", apt_errors.ErrSessionStoreOperation, key, err)
	}
	return value, true, nil
}

func (r *RedisSessionStore) Set(ctx context.Context, key, value string) error {
	sealed, err := sealString(value)
	if err != nil {
		return fmt.Errorf("%w: encrypt %s: %v", apt_errors.ErrSessionStoreOperation, key, err)
	}
	if err := r.client.Set(ctx, r.key(key), sealed, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", apt_errors.ErrSessionStoreOperation, key, err)
	}
	logger.Debug("Session value stored", zap.String("key", key))
	return nil
}

func (r *RedisSessionStore) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = r.key(k)
	}
	if err := r.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("%w: delete: %v", apt_errors.ErrSessionStoreOperation, err)
	}
	return nil
}
