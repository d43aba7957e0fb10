package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/medportal-cli/internal/adapters/mirror/file"
	portmocks "github.com/bnema/medportal-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStoreLoadUsesPrimaryWhenItHasRecord(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockMirrorStore(t)
	fallback := portmocks.NewMockMirrorStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Load(mock.Anything, "chatHistory").Return([]byte(`[1]`), true, nil).Once()

	value, ok, err := store.Load(context.Background(), "chatHistory")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[1]`), value)
}

func TestStoreLoadFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockMirrorStore(t)
	fallback := portmocks.NewMockMirrorStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Load(mock.Anything, "chatHistory").Return(nil, false, errors.New("redis unavailable")).Once()
	fallback.EXPECT().Load(mock.Anything, "chatHistory").Return([]byte(`[2]`), true, nil).Once()

	value, ok, err := store.Load(context.Background(), "chatHistory")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[2]`), value)
}

func TestStoreLoadConsultsFallbackWhenPrimaryIsEmpty(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockMirrorStore(t)
	fallback := portmocks.NewMockMirrorStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Load(mock.Anything, "currentUser").Return(nil, false, nil).Once()
	fallback.EXPECT().Load(mock.Anything, "currentUser").Return(nil, false, nil).Once()

	value, ok, err := store.Load(context.Background(), "currentUser")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestStoreLoadReturnsCombinedErrorWhenBothBackendsFail(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockMirrorStore(t)
	fallback := portmocks.NewMockMirrorStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Load(mock.Anything, "chatHistory").Return(nil, false, errors.New("redis failed")).Once()
	fallback.EXPECT().Load(mock.Anything, "chatHistory").Return(nil, false, errors.New("file failed")).Once()

	_, _, err := store.Load(context.Background(), "chatHistory")
	require.Error(t, err)
	assert.ErrorContains(t, err, "primary backend")
	assert.ErrorContains(t, err, "fallback backend")
	assert.ErrorContains(t, err, "redis failed")
	assert.ErrorContains(t, err, "file failed")
}

func TestStoreSaveFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockMirrorStore(t)
	fallback := portmocks.NewMockMirrorStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Save(mock.Anything, "appointmentList", []byte(`[]`)).Return(errors.New("redis failed")).Once()
	fallback.EXPECT().Save(mock.Anything, "appointmentList", []byte(`[]`)).Return(nil).Once()
	primary.EXPECT().Clear(mock.Anything, "appointmentList").Return(nil).Once()

	require.NoError(t, store.Save(context.Background(), "appointmentList", []byte(`[]`)))
}

func TestStoreSaveReportsStalePrimaryRecordAfterFallbackWrite(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockMirrorStore(t)
	fallback := portmocks.NewMockMirrorStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Save(mock.Anything, "appointmentList", []byte(`[]`)).Return(errors.New("redis read-only")).Once()
	fallback.EXPECT().Save(mock.Anything, "appointmentList", []byte(`[]`)).Return(nil).Once()
	primary.EXPECT().Clear(mock.Anything, "appointmentList").Return(errors.New("redis read-only")).Once()

	err := store.Save(context.Background(), "appointmentList", []byte(`[]`))
	require.Error(t, err)
	assert.ErrorContains(t, err, "stale primary record not cleared")
}

func TestStoreLoadReturnsSnapshotWrittenDuringPrimaryOutage(t *testing.T) {
	t.Parallel()

	primary := &flakyStore{Store: file.NewStore(t.TempDir())}
	store := NewStore(primary, file.NewStore(t.TempDir()))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "chatHistory", []byte(`["v1"]`)))

	primary.failSaves = true
	require.NoError(t, store.Save(ctx, "chatHistory", []byte(`["v2"]`)))
	primary.failSaves = false

	value, ok, err := store.Load(ctx, "chatHistory")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`["v2"]`), value)

	require.NoError(t, store.Save(ctx, "chatHistory", []byte(`["v3"]`)))
	value, ok, err = store.Load(ctx, "chatHistory")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`["v3"]`), value)
}

// flakyStore is a file store whose writes can be switched off while reads
// and deletes keep working.
type flakyStore struct {
	*file.Store
	failSaves bool
}

func (s *flakyStore) Save(ctx context.Context, key string, value []byte) error {
	if s.failSaves {
		return errors.New("primary unavailable for writes")
	}
	return s.Store.Save(ctx, key, value)
}

func TestStoreSaveDoesNotCallFallbackWhenPrimarySucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockMirrorStore(t)
	fallback := portmocks.NewMockMirrorStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Save(mock.Anything, "appointmentList", []byte(`[]`)).Return(nil).Once()

	require.NoError(t, store.Save(context.Background(), "appointmentList", []byte(`[]`)))
}

func TestStoreClearRemovesFromBothBackends(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockMirrorStore(t)
	fallback := portmocks.NewMockMirrorStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Clear(mock.Anything, "currentUser").Return(nil).Once()
	fallback.EXPECT().Clear(mock.Anything, "currentUser").Return(nil).Once()

	require.NoError(t, store.Clear(context.Background(), "currentUser"))
}

func TestStoreClearReportsFallbackFailure(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockMirrorStore(t)
	fallback := portmocks.NewMockMirrorStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Clear(mock.Anything, "currentUser").Return(nil).Once()
	fallback.EXPECT().Clear(mock.Anything, "currentUser").Return(errors.New("disk full")).Once()

	err := store.Clear(context.Background(), "currentUser")
	require.Error(t, err)
	assert.ErrorContains(t, err, "fallback backend clear failed")
}

func TestStoreDoesNotFallbackOnCanceledContextError(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockMirrorStore(t)
	fallback := portmocks.NewMockMirrorStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Load(mock.Anything, "chatHistory").Return(nil, false, context.Canceled).Once()
	primary.EXPECT().Save(mock.Anything, "chatHistory", []byte(`[]`)).Return(context.DeadlineExceeded).Once()
	primary.EXPECT().Clear(mock.Anything, "chatHistory").Return(context.Canceled).Once()

	_, _, err := store.Load(context.Background(), "chatHistory")
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, store.Save(context.Background(), "chatHistory", []byte(`[]`)), context.DeadlineExceeded)
	require.ErrorIs(t, store.Clear(context.Background(), "chatHistory"), context.Canceled)
}

func TestNewStoreCheckedRejectsNilBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStoreChecked(nil, portmocks.NewMockMirrorStore(t))
	require.ErrorIs(t, err, errNilPrimaryStore)

	_, err = NewStoreChecked(portmocks.NewMockMirrorStore(t), nil)
	require.ErrorIs(t, err, errNilFallbackStore)
}
