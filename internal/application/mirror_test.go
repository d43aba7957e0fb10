package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/medportal-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string   `json:"name"`
	Slots []string `json:"slots"`
}

func TestRecordRoundTrip(t *testing.T) {
	t.Parallel()

	mirror := newMemoryMirror()
	record := NewRecord[sample](mirror, "sample")
	want := sample{Name: "Dr. Chen", Slots: []string{"08:00", "09:00"}}

	require.NoError(t, record.Save(context.Background(), want))

	got, ok, err := record.Load(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
	assert.JSONEq(t, `{"version":1,"value":{"name":"Dr. Chen","slots":["08:00","09:00"]}}`, string(mirror.records["sample"]))
}

func TestRecordLoadAbsent(t *testing.T) {
	t.Parallel()

	record := NewRecord[sample](newMemoryMirror(), "sample")

	got, ok, err := record.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, got)
}

func TestRecordLoadRejectsUnreadablePayloads(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
	}{
		{name: "not json", payload: "{broken"},
		{name: "newer version", payload: `{"version":2,"value":{}}`},
		{name: "wrong shape", payload: `{"version":1,"value":[1,2]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mirror := newMemoryMirror()
			mirror.records["sample"] = []byte(tt.payload)

			_, ok, err := NewRecord[sample](mirror, "sample").Load(context.Background())
			require.ErrorIs(t, err, ErrCorruptRecord)
			assert.False(t, ok)
		})
	}
}

func TestRecordWrapsStoreErrors(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockMirrorStore(t)
	storeErr := errors.New("disk unavailable")
	store.EXPECT().Load(mockAnyContext(), "sample").Return(nil, false, storeErr).Once()
	store.EXPECT().Save(mockAnyContext(), "sample", []byte(`{"version":1,"value":{"name":"","slots":null}}`)).Return(storeErr).Once()
	store.EXPECT().Clear(mockAnyContext(), "sample").Return(storeErr).Once()

	record := NewRecord[sample](store, "sample")

	_, _, err := record.Load(context.Background())
	require.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrCorruptRecord)

	require.ErrorIs(t, record.Save(context.Background(), sample{}), storeErr)
	require.ErrorIs(t, record.Clear(context.Background()), storeErr)
}
