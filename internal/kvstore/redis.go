package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore is a Store backed by a Redis instance. Logical keys are
// namespaced under a prefix so independent deployments can share one
// Redis database. Expiry uses Redis-native key TTLs.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore wraps client as a Store. It pings the server so a
// misconfigured address fails at startup rather than on first use.
func NewRedisStore(client *redis.Client, prefix string) (*RedisStore, error) {
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return &RedisStore{client: client, prefix: prefix}, nil
}

func (s *RedisStore) namespaced(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}

func (s *RedisStore) Get(key string, into interface{}) (bool, error) {
	data, err := s.client.Get(context.Background(), s.namespaced(key)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get key %s: %w", key, err)
	}

	if err := json.Unmarshal(data, into); err != nil {
		return false, fmt.Errorf("failed to decode value for key %s: %w", key, err)
	}
	return true, nil
}

func (s *RedisStore) Set(key string, value interface{}) error {
	return s.SetTTL(key, value, 0)
}

func (s *RedisStore) SetTTL(key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for key %s: %w", key, err)
	}

	if err := s.client.Set(context.Background(), s.namespaced(key), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(key string) error {
	if err := s.client.Del(context.Background(), s.namespaced(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}
