package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"scheduly/models"
)

const redisKeyPrefix = "scheduly:session:"

// RedisStore keeps sessions in Redis with a native TTL, so expiry needs no
// sweeper of its own.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps an already-connected Redis client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) key(sessionID string) string {
	return redisKeyPrefix + sessionID
}

func (r *RedisStore) Create(ctx context.Context, sessionID string, state models.SessionState) error {
	now := time.Now()
	rec := models.SessionRecord{
		SessionID:    sessionID,
		State:        state,
		CreatedAt:    now,
		LastAccessed: now,
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", sessionID, err)
	}
	if err := r.client.Set(ctx, r.key(sessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session %s: %w", sessionID, err)
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, sessionID string) (*models.SessionRecord, error) {
	data, err := r.client.Get(ctx, r.key(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session %s: %w", sessionID, err)
	}
	var rec models.SessionRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session %s: %w", sessionID, err)
	}
	// Touch: refresh last-access and the TTL window.
	rec.LastAccessed = time.Now()
	if touched, err := json.Marshal(rec); err == nil {
		r.client.Set(ctx, r.key(sessionID), touched, r.ttl)
	}
	return &rec, nil
}

func (r *RedisStore) Update(ctx context.Context, sessionID string, state models.SessionState) error {
	rec, err := r.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	rec.State = state
	rec.LastAccessed = time.Now()
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", sessionID, err)
	}
	if err := r.client.Set(ctx, r.key(sessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to update session %s: %w", sessionID, err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	n, err := r.client.Del(ctx, r.key(sessionID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CleanupExpired is a no-op: Redis evicts keys via TTL.
func (r *RedisStore) CleanupExpired(context.Context) (int, error) {
	return 0, nil
}

func (r *RedisStore) Close(context.Context) error {
	return r.client.Close()
}
