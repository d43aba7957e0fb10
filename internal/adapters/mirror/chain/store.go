package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/medportal-cli/internal/ports"
)

// Store writes to the primary backend and uses the fallback only when the
// primary fails. A fallback write drops the primary's copy of the key so
// the next load misses on the primary and reads the newer fallback record.
type Store struct {
	primary  ports.MirrorStore
	fallback ports.MirrorStore
}

var _ ports.MirrorStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary mirror store is nil")
	errNilFallbackStore = errors.New("fallback mirror store is nil")
)

func NewStore(primary ports.MirrorStore, fallback ports.MirrorStore) *Store {
	store, err := NewStoreChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(primary ports.MirrorStore, fallback ports.MirrorStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	err := s.primary.Save(ctx, key, value)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Save(ctx, key, value)
	if fallbackErr == nil {
		if clearErr := s.primary.Clear(ctx, key); clearErr != nil {
			return fmt.Errorf("primary backend save failed: %w; stale primary record not cleared: %w", err, clearErr)
		}
		return nil
	}

	return fmt.Errorf("primary backend save failed: %w; fallback backend save failed: %w", err, fallbackErr)
}

func (s *Store) Load(ctx context.Context, key string) ([]byte, bool, error) {
	value, ok, err := s.primary.Load(ctx, key)
	if err == nil && ok {
		return value, true, nil
	}
	if err != nil && shouldSkipFallback(err) {
		return nil, false, err
	}

	fallbackValue, fallbackOK, fallbackErr := s.fallback.Load(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, fallbackOK, nil
	}
	if err == nil {
		return nil, false, fmt.Errorf("fallback backend load failed: %w", fallbackErr)
	}

	return nil, false, fmt.Errorf("primary backend load failed: %w; fallback backend load failed: %w", err, fallbackErr)
}

// Clear removes the record from both backends.
func (s *Store) Clear(ctx context.Context, key string) error {
	err := s.primary.Clear(ctx, key)
	if err != nil && shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Clear(ctx, key)
	switch {
	case err == nil && fallbackErr == nil:
		return nil
	case err == nil:
		return fmt.Errorf("fallback backend clear failed: %w", fallbackErr)
	case fallbackErr == nil:
		return fmt.Errorf("primary backend clear failed: %w", err)
	default:
		return fmt.Errorf("primary backend clear failed: %w; fallback backend clear failed: %w", err, fallbackErr)
	}
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
