package toml

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTripKeepsOtherRecords(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", MirrorFileName)
	store, err := NewStore(path)
	require.NoError(t, err)
	ctx := context.Background()

	user := []byte(`{"version":1,"value":{"id":"7","name":"Ana"}}`)
	chat := []byte("{\"version\":1,\"value\":[{\"message\":\"line one\\nline two\"}]}")

	require.NoError(t, store.Save(ctx, "currentUser", user))
	require.NoError(t, store.Save(ctx, "chatHistory", chat))

	got, ok, err := store.Load(ctx, "currentUser")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, user, got)

	got, ok, err = store.Load(ctx, "chatHistory")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, chat, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(mirrorFileMode), info.Mode().Perm())
}

func TestStoreLoadMissingFileAndKeyAreAbsent(t *testing.T) {
	t.Parallel()

	store, err := NewStore(filepath.Join(t.TempDir(), MirrorFileName))
	require.NoError(t, err)
	ctx := context.Background()

	_, ok, err := store.Load(ctx, "appointmentList")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, "currentUser", []byte(`{}`)))
	_, ok, err = store.Load(ctx, "appointmentList")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreClearRemovesOnlyThatKey(t *testing.T) {
	t.Parallel()

	store, err := NewStore(filepath.Join(t.TempDir(), MirrorFileName))
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "currentUser", []byte(`{"a":1}`)))
	require.NoError(t, store.Save(ctx, "appointmentList", []byte(`[]`)))

	require.NoError(t, store.Clear(ctx, "currentUser"))
	require.NoError(t, store.Clear(ctx, "currentUser"))

	_, ok, err := store.Load(ctx, "currentUser")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = store.Load(ctx, "appointmentList")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStoreRejectsNewerSchemaVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), MirrorFileName)
	require.NoError(t, os.WriteFile(path, []byte("version = 99\n"), 0o600))

	store, err := NewStore(path)
	require.NoError(t, err)

	_, _, err = store.Load(context.Background(), "currentUser")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported mirror schema version 99")
}

func TestStoreConcurrentSavesKeepEveryKey(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), MirrorFileName)
	ctx := context.Background()
	keys := []string{"currentUser", "appointmentList", "chatHistory"}

	var wg sync.WaitGroup
	for _, key := range keys {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			store, err := NewStore(path)
			if !assert.NoError(t, err) {
				return
			}
			assert.NoError(t, store.Save(ctx, key, []byte(key)))
		}(key)
	}
	wg.Wait()

	store, err := NewStore(path)
	require.NoError(t, err)
	for _, key := range keys {
		got, ok, err := store.Load(ctx, key)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, []byte(key), got)
	}
}
