package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/iwvelando/unit-economics/internal/config"
	"github.com/iwvelando/unit-economics/internal/economics"
)

// RedisStore keeps a snapshot as a JSON string under <prefix><name>.
type RedisStore struct {
	rdb *redis.Client
	key string
}

// OpenRedis connects to Redis and checks the connection.
func OpenRedis(ctx context.Context, cfg config.RedisConfig, name string) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.Address, err)
	}
	return NewRedisStore(rdb, cfg.KeyPrefix+name), nil
}

// NewRedisStore wraps an existing client.
func NewRedisStore(rdb *redis.Client, key string) *RedisStore {
	return &RedisStore{rdb: rdb, key: key}
}

// Key returns the Redis key the snapshot lives under.
func (s *RedisStore) Key() string {
	return s.key
}

// Load reads the snapshot key.
func (s *RedisStore) Load(ctx context.Context) (economics.Model, error) {
	payload, err := s.rdb.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return economics.Model{}, ErrNoSnapshot
		}
		return economics.Model{}, fmt.Errorf("get snapshot %s: %w", s.key, err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return economics.Model{}, fmt.Errorf("decode snapshot %s: %w", s.key, err)
	}
	if err := snapshot.check(); err != nil {
		return economics.Model{}, fmt.Errorf("decode snapshot %s: %w", s.key, err)
	}
	return snapshot.model(), nil
}

// Save overwrites the snapshot key. Snapshots do not expire.
func (s *RedisStore) Save(ctx context.Context, m economics.Model) error {
	payload, err := json.Marshal(newSnapshot(m))
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.rdb.Set(ctx, s.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("set snapshot %s: %w", s.key, err)
	}
	return nil
}

// Close closes the client.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
