package common

import "time"

// CacheInterface defines the contract for cache implementations
type CacheInterface interface {
	// Set stores a value in cache with the given key and duration
	Set(key string, value interface{}, duration time.Duration)

	// Get retrieves a value from cache by key, reporting whether it
	// was found
	Get(key string) (interface{}, bool)

	// Delete removes a key from the cache
	Delete(key string)

	// GetOrSet returns the cached value or loads, stores, and returns
	// a fresh one
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error)

	// Close releases any resources held by the cache
	Close() error
}
