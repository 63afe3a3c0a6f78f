package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ivline11/nft-rental-dapp/internal/cache"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "usernfts:0xa", cache.UserNFTsKey("0xa"))
	assert.Equal(t, "kiosk:0xa", cache.KioskKey("0xa"))
	assert.Equal(t, "kiosknfts:0xk", cache.KioskNFTsKey("0xk"))
	assert.Equal(t, "rented:0xa", cache.RentedKey("0xa"))
}

func TestTTLStore(t *testing.T) {
	store := cache.NewTTLStore(time.Minute)

	_, ok := store.Get("missing")
	assert.False(t, ok)

	store.Set("key", "value")
	got, ok := store.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "value", got)

	store.Invalidate("key", "also-missing")
	_, ok = store.Get("key")
	assert.False(t, ok)
}

func TestTTLStore_Expiry(t *testing.T) {
	store := cache.NewTTLStore(10 * time.Millisecond)

	store.Set("key", "value")
	time.Sleep(30 * time.Millisecond)

	_, ok := store.Get("key")
	assert.False(t, ok)
}
