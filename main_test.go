package main

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vehicle-Shield/storefront/internal/cart/model"
	"github.com/Vehicle-Shield/storefront/internal/cart/repo"
	pkgredis "github.com/Vehicle-Shield/storefront/pkg/redis"
)

func TestOpenStorage_Memory(t *testing.T) {
	cfg := AppConfig{Cart: model.CartConfig{Backend: model.BackendMemory}}
	storage, closeFn, err := openStorage(context.Background(), cfg)
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &repo.MemoryStorage{}, storage)
}

func TestOpenStorage_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := AppConfig{
		Redis: pkgredis.Config{URL: "redis://" + mr.Addr(), ReadTimeout: 1, WriteTimeout: 1, DialTimeout: 1},
		Cart:  model.CartConfig{Backend: model.BackendRedis, TTL: "1h", SessionID: "abc"},
	}
	storage, closeFn, err := openStorage(context.Background(), cfg)
	require.NoError(t, err)
	defer closeFn()

	require.NoError(t, storage.Set(context.Background(), "cart", "[]"))
	assert.True(t, mr.Exists("storage:abc:cart"))
}

func TestOpenStorage_Errors(t *testing.T) {
	ctx := context.Background()

	_, _, err := openStorage(ctx, AppConfig{Cart: model.CartConfig{Backend: "sqlite"}})
	assert.ErrorContains(t, err, "unknown CART_STORAGE")

	_, _, err = openStorage(ctx, AppConfig{Cart: model.CartConfig{Backend: model.BackendRedis, TTL: "soon"}})
	assert.ErrorContains(t, err, "invalid CART_TTL")
}
