package repo

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errx "github.com/Vehicle-Shield/storefront/internal/core/error"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestRedisStorage_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newRedis(t)
	s := NewRedisStorage(rdb, "session-1", 0)

	_, found, err := s.Get(ctx, "cart")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "cart", "[]"))
	assert.True(t, mr.Exists("storage:session-1:cart"))

	v, found, err := s.Get(ctx, "cart")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", v)

	require.NoError(t, s.Delete(ctx, "cart"))
	assert.False(t, mr.Exists("storage:session-1:cart"))
	require.NoError(t, s.Delete(ctx, "cart"))
}

func TestRedisStorage_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	_, rdb := newRedis(t)
	a := NewRedisStorage(rdb, "a", 0)
	b := NewRedisStorage(rdb, "b", 0)

	require.NoError(t, a.Set(ctx, "cart", `[{"id":1}]`))
	_, found, err := b.Get(ctx, "cart")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStorage_TTLRefreshedOnWrite(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newRedis(t)
	s := NewRedisStorage(rdb, "s", time.Hour)

	require.NoError(t, s.Set(ctx, "cart", "[]"))
	assert.Equal(t, time.Hour, mr.TTL("storage:s:cart"))

	mr.FastForward(59 * time.Minute)
	require.NoError(t, s.Set(ctx, "cart", "[]"))
	assert.Equal(t, time.Hour, mr.TTL("storage:s:cart"))

	mr.FastForward(61 * time.Minute)
	_, found, err := s.Get(ctx, "cart")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStorage_ErrorsAreWrapped(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newRedis(t)
	s := NewRedisStorage(rdb, "s", 0)
	mr.SetError("ERR backend unavailable")

	_, _, err := s.Get(ctx, "cart")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, errx.StatusOf(err))

	assert.Error(t, s.Set(ctx, "cart", "[]"))
	assert.Error(t, s.Delete(ctx, "cart"))
}

func TestPersistence_OverRedis(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newRedis(t)
	p := NewPersistence(NewRedisStorage(rdb, "s", 0), "cart")

	lines := sampleLines()
	p.Save(ctx, lines)
	assert.Equal(t, lines, p.Load(ctx))

	require.NoError(t, mr.Set("storage:s:cart", "{{{"))
	assert.Empty(t, p.Load(ctx))
}
