package ports

import (
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get for keys that have never been set.
var ErrCacheMiss = errors.New("cache miss")

type CachePort interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
}
