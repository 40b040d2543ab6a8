package redis

import (
	"context"
	"errors"
	"time"

	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// RedisAdapter backs ports.CachePort. The engine uses it as the client-session
// persistence collaborator (selected-vehicle slots), so values written with a
// zero TTL never expire.
type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (a *RedisAdapter) Get(key string) ([]byte, error) {
	value, err := a.client.Get(context.Background(), key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ports.ErrCacheMiss
		}
		return nil, err
	}
	return value, nil
}

func (a *RedisAdapter) Set(key string, value []byte, ttl time.Duration) error {
	return a.client.Set(context.Background(), key, value, ttl).Err()
}

func (a *RedisAdapter) Delete(key string) error {
	return a.client.Del(context.Background(), key).Err()
}
