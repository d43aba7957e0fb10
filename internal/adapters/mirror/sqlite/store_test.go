package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "state", DatabaseFileName)
	store, err := NewStore(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store, path
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()
	want := []byte(`{"version":1,"value":[{"id":"12","status":"scheduled"}]}`)

	require.NoError(t, store.Save(ctx, "appointmentList", want))

	got, ok, err := store.Load(ctx, "appointmentList")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestStoreSaveOverwritesAndStampsTime(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()
	at := time.Date(2026, 4, 1, 8, 30, 0, 0, time.UTC)
	store.now = func() time.Time { return at }

	require.NoError(t, store.Save(ctx, "currentUser", []byte(`{"id":"1"}`)))
	require.NoError(t, store.Save(ctx, "currentUser", []byte(`{"id":"2"}`)))

	got, ok, err := store.Load(ctx, "currentUser")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"id":"2"}`), got)

	savedAt, ok, err := store.SavedAt(ctx, "currentUser")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, at.Equal(savedAt))
}

func TestStoreLoadNeverWrittenKeyIsAbsent(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)

	got, ok, err := store.Load(context.Background(), "chatHistory")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestStoreClear(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "chatHistory", []byte(`[]`)))

	require.NoError(t, store.Clear(ctx, "chatHistory"))
	require.NoError(t, store.Clear(ctx, "chatHistory"))

	_, ok, err := store.Load(ctx, "chatHistory")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreSurvivesReopen(t *testing.T) {
	t.Parallel()

	store, path := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "currentUser", []byte(`{"id":"9"}`)))
	require.NoError(t, store.Close())

	reopened, err := NewStore(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, ok, err := reopened.Load(ctx, "currentUser")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"id":"9"}`), got)
}
