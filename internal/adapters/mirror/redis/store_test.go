package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewStore(client, "test", ttl), mr
}

func TestStoreRoundTripUsesNamespacedKey(t *testing.T) {
	store, mr := newTestStore(t, 0)
	ctx := context.Background()
	want := []byte(`{"version":1,"value":{"id":"3"}}`)

	require.NoError(t, store.Save(ctx, "currentUser", want))

	got, ok, err := store.Load(ctx, "currentUser")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)

	raw, err := mr.Get("mirror:test:currentUser")
	require.NoError(t, err)
	assert.Equal(t, string(want), raw)
	assert.Zero(t, mr.TTL("mirror:test:currentUser"))
}

func TestStoreLoadMissingKeyIsAbsent(t *testing.T) {
	store, _ := newTestStore(t, 0)

	got, ok, err := store.Load(context.Background(), "chatHistory")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestStoreAppliesTTL(t *testing.T) {
	store, mr := newTestStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "chatHistory", []byte(`[]`)))
	assert.Equal(t, time.Hour, mr.TTL("mirror:test:chatHistory"))

	mr.FastForward(2 * time.Hour)

	_, ok, err := store.Load(ctx, "chatHistory")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreClear(t *testing.T) {
	store, mr := newTestStore(t, 0)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "appointmentList", []byte(`[]`)))

	require.NoError(t, store.Clear(ctx, "appointmentList"))
	require.NoError(t, store.Clear(ctx, "appointmentList"))

	assert.False(t, mr.Exists("mirror:test:appointmentList"))
}

func TestStoreSurfacesServerErrors(t *testing.T) {
	store, mr := newTestStore(t, 0)
	mr.Close()

	_, _, err := store.Load(context.Background(), "currentUser")
	require.Error(t, err)
	assert.ErrorContains(t, err, "mirror: failed to load currentUser")
}

func TestNewClientPingsServer(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewClient(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	require.NoError(t, client.Close())

	mr.Close()
	_, err = NewClient(context.Background(), mr.Addr(), "", 0)
	require.Error(t, err)
}
