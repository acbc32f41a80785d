package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"unipick/internal/survey/models"
)

const sessionKeyPrefix = "survey_session:"

// RedisStore persists wizard sessions in Redis so several instances can
// serve the same wizard. Every save refreshes the key's TTL.
type RedisStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedis constructs a Redis-backed session store.
func NewRedis(client redis.Cmdable, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) key(id string) string {
	return sessionKeyPrefix + id
}

func (s *RedisStore) Save(ctx context.Context, session *models.Session) error {
	data, err := encodeSession(session)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key(session.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *RedisStore) FindByID(ctx context.Context, id string) (*models.Session, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find session by id: %w", err)
	}
	return decodeSession(data)
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
