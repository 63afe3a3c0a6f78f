package cache

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Store is a keyed, time-boxed read cache with explicit invalidation. It is
// never a source of truth: entries expire on their own and every mutating
// operation invalidates the keys it could have affected before returning.
type Store interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
	Invalidate(keys ...string)
}

// Keys for the cached reads, keyed by each entity's natural key.
func UserNFTsKey(address string) string  { return fmt.Sprintf("usernfts:%s", address) }
func KioskKey(address string) string     { return fmt.Sprintf("kiosk:%s", address) }
func KioskNFTsKey(kioskID string) string { return fmt.Sprintf("kiosknfts:%s", kioskID) }
func RentedKey(address string) string    { return fmt.Sprintf("rented:%s", address) }

// RentablesKey caches the global listing set; it has no per-entity key.
const RentablesKey = "rentables"

// TTLStore backs Store with an in-process TTL cache.
type TTLStore struct {
	inner *gocache.Cache
}

// NewTTLStore creates a store whose entries expire after ttl.
func NewTTLStore(ttl time.Duration) *TTLStore {
	return &TTLStore{
		inner: gocache.New(ttl, 2*ttl),
	}
}

var _ Store = (*TTLStore)(nil)

// Get returns the cached value for key, if present and not expired.
func (s *TTLStore) Get(key string) (interface{}, bool) {
	return s.inner.Get(key)
}

// Set caches a value under key with the store's default expiration.
func (s *TTLStore) Set(key string, value interface{}) {
	s.inner.SetDefault(key, value)
}

// Invalidate drops the given keys synchronously.
func (s *TTLStore) Invalidate(keys ...string) {
	for _, key := range keys {
		s.inner.Delete(key)
	}
}
