package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/medportal-cli/internal/ports"
)

const mirrorSchemaVersion = 1

var ErrCorruptRecord = errors.New("mirror record is unreadable")

type mirrorEnvelope[T any] struct {
	Version int `json:"version"`
	Value   T   `json:"value"`
}

// Record is a typed view over one mirror key. Save overwrites the whole
// value; there is no partial merge.
type Record[T any] struct {
	store ports.MirrorStore
	key   string
}

func NewRecord[T any](store ports.MirrorStore, key string) Record[T] {
	return Record[T]{store: store, key: key}
}

func (r Record[T]) Key() string {
	return r.key
}

func (r Record[T]) Load(ctx context.Context) (T, bool, error) {
	var zero T

	data, ok, err := r.store.Load(ctx, r.key)
	if err != nil {
		return zero, false, fmt.Errorf("load %s: %w", r.key, err)
	}
	if !ok {
		return zero, false, nil
	}

	var envelope mirrorEnvelope[T]
	if err := json.Unmarshal(data, &envelope); err != nil {
		return zero, false, fmt.Errorf("decode %s: %w: %w", r.key, ErrCorruptRecord, err)
	}
	if envelope.Version > mirrorSchemaVersion {
		return zero, false, fmt.Errorf("decode %s: %w: unsupported mirror schema version %d (current %d)", r.key, ErrCorruptRecord, envelope.Version, mirrorSchemaVersion)
	}

	return envelope.Value, true, nil
}

func (r Record[T]) Save(ctx context.Context, value T) error {
	data, err := json.Marshal(mirrorEnvelope[T]{Version: mirrorSchemaVersion, Value: value})
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.key, err)
	}

	if err := r.store.Save(ctx, r.key, data); err != nil {
		return fmt.Errorf("save %s: %w", r.key, err)
	}

	return nil
}

func (r Record[T]) Clear(ctx context.Context) error {
	if err := r.store.Clear(ctx, r.key); err != nil {
		return fmt.Errorf("clear %s: %w", r.key, err)
	}

	return nil
}
