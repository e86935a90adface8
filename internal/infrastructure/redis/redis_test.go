package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lms-api/internal/infrastructure/redis"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return srv, client
}

// ──────────────────────────────────────────────────────────────────────────────
// TokenStore
// ──────────────────────────────────────────────────────────────────────────────

func TestTokenStore_RevocacionExpiraConElToken(t *testing.T) {
	srv, client := newClient(t)
	store := redis.NewTokenStore(client, "")
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "jti-1", time.Minute))
	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.True(t, srv.Exists("lms:revoked:jti-1"))

	srv.FastForward(2 * time.Minute)
	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestTokenStore_ConsumeSoloUnaVez(t *testing.T) {
	_, client := newClient(t)
	store := redis.NewTokenStore(client, "test:")
	ctx := context.Background()

	ok, err := store.Consume(ctx, "jti-reset", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Consume(ctx, "jti-reset", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok, "el segundo uso debe rechazarse")
}

func TestTokenStore_RevokeIfAbsentSoloReclamaUnaVez(t *testing.T) {
	srv, client := newClient(t)
	store := redis.NewTokenStore(client, "")
	ctx := context.Background()

	ok, err := store.RevokeIfAbsent(ctx, "jti-refresh", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, srv.Exists("lms:revoked:jti-refresh"))

	ok, err = store.RevokeIfAbsent(ctx, "jti-refresh", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "el jti ya revocado no puede reclamarse de nuevo")

	revoked, err := store.IsRevoked(ctx, "jti-refresh")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestTokenStore_TTLNoPositivoNoDejaClavesEternas(t *testing.T) {
	srv, client := newClient(t)
	store := redis.NewTokenStore(client, "")

	require.NoError(t, store.Revoke(context.Background(), "vencido", -time.Minute))
	assert.Greater(t, srv.TTL("lms:revoked:vencido"), time.Duration(0))
}

// ──────────────────────────────────────────────────────────────────────────────
// Storage (limiter)
// ──────────────────────────────────────────────────────────────────────────────

func TestStorage_GetSetDeleteReset(t *testing.T) {
	srv, client := newClient(t)
	st := redis.NewStorage(client, "")

	val, err := st.Get("ip:1")
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, st.Set("ip:1", []byte("3"), time.Minute))
	val, err = st.Get("ip:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), val)
	assert.True(t, srv.Exists("lms:limiter:ip:1"))

	require.NoError(t, st.Delete("ip:1"))
	val, err = st.Get("ip:1")
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, srv.Set("otra:clave", "x"))
	require.NoError(t, st.Set("ip:2", []byte("1"), 0))
	require.NoError(t, st.Reset())
	assert.False(t, srv.Exists("lms:limiter:ip:2"))
	assert.True(t, srv.Exists("otra:clave"), "Reset sólo borra el prefijo propio")

	require.NoError(t, st.Close())
}
