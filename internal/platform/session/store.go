package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quiz_admin_console/internal/common"
	"quiz_admin_console/internal/domain/model"

	"github.com/redis/go-redis/v9"
)

// Store keeps live admin sessions. The cookie only ever references a session
// by ID; the upstream bearer token stays server-side in the store.
type Store interface {
	Save(ctx context.Context, s *model.Session, ttl time.Duration) error
	Find(ctx context.Context, id string) (*model.Session, error)
	Delete(ctx context.Context, id string) error
}

const keyPrefix = "admin_session:"

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Save(ctx context.Context, sess *model.Session, ttl time.Duration) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.rdb.Set(ctx, keyPrefix+sess.ID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *RedisStore) Find(ctx context.Context, id string) (*model.Session, error) {
	payload, err := s.rdb.Get(ctx, keyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, common.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	var sess model.Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
