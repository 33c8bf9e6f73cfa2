package store

import (
	"IntakeKiosk/models"

	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionCache(t *testing.T, ttl time.Duration) (*RedisSessionCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb, err := NewRedis(RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisSessionCache(rdb, ttl), mr
}

func TestNewRedis_RequiresAddr(t *testing.T) {
	_, err := NewRedis(RedisConfig{})
	assert.Error(t, err)
}

func TestNewRedis_Unreachable(t *testing.T) {
	_, err := NewRedis(RedisConfig{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}

func TestRedisSessionCache_RoundTrip(t *testing.T) {
	cache, mr := newSessionCache(t, 12*time.Hour)
	ctx := context.Background()
	issued := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	session := models.AdminSession{Token: "tok-1", Username: "admin", Role: models.AdminRole, IssuedAt: issued}
	require.NoError(t, cache.Put(ctx, session))

	assert.True(t, mr.Exists(SessionKeyPrefix+"tok-1"))
	assert.Equal(t, 12*time.Hour, mr.TTL(SessionKeyPrefix+"tok-1"))

	got, err := cache.Get(ctx, "tok-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "admin", got.Username)
	assert.Equal(t, models.AdminRole, got.Role)
	assert.True(t, issued.Equal(got.IssuedAt))
}

func TestRedisSessionCache_Miss(t *testing.T) {
	cache, _ := newSessionCache(t, time.Hour)

	got, err := cache.Get(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisSessionCache_Expires(t *testing.T) {
	cache, mr := newSessionCache(t, time.Minute)
	ctx := context.Background()
	require.NoError(t, cache.Put(ctx, models.AdminSession{Token: "tok-2", Username: "admin"}))

	mr.FastForward(2 * time.Minute)

	got, err := cache.Get(ctx, "tok-2")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisSessionCache_CorruptValue(t *testing.T) {
	cache, mr := newSessionCache(t, time.Hour)
	require.NoError(t, mr.Set(SessionKeyPrefix+"bad", "not json"))

	_, err := cache.Get(context.Background(), "bad")
	assert.Error(t, err)
}
