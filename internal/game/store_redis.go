package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisSessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSessionStore(rdb *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb, ttl: ttl}
}

func (s *RedisSessionStore) key(player string) string {
	return fmt.Sprintf("session:%s:snapshot", player)
}

func (s *RedisSessionStore) Save(ctx context.Context, player string, snap SessionSnapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key(player), b, s.ttl).Err()
}

func (s *RedisSessionStore) Load(ctx context.Context, player string) (SessionSnapshot, bool, error) {
	val, err := s.rdb.Get(ctx, s.key(player)).Bytes()
	if errors.Is(err, redis.Nil) {
		return SessionSnapshot{}, false, nil
	}
	if err != nil {
		return SessionSnapshot{}, false, err
	}

	var snap SessionSnapshot
	if err := json.Unmarshal(val, &snap); err != nil {
		return SessionSnapshot{}, false, err
	}
	return snap, true, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, player string) error {
	return s.rdb.Del(ctx, s.key(player)).Err()
}
