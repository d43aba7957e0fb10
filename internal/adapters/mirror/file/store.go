package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/medportal-cli/internal/ports"
)

const (
	storeDirMode   = 0o700
	recordFileMode = 0o600
	recordSuffix   = ".json"
)

// Store keeps one file per mirror key under root.
type Store struct {
	root string
	mu   sync.RWMutex
}

var _ ports.MirrorStore = (*Store)(nil)

func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.root, storeDirMode); err != nil {
		return fmt.Errorf("create mirror directory: %w", err)
	}

	tempFile, err := os.CreateTemp(s.root, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp mirror record %q: %w", key, err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(value); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp mirror record %q: %w", key, err)
	}

	if err := tempFile.Chmod(recordFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp mirror record %q: %w", key, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp mirror record %q: %w", key, err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace mirror record %q: %w", key, err)
	}
	cleanup = false

	return nil
}

func (s *Store) Load(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return nil, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read mirror record %q: %w", key, err)
	}

	return data, true, nil
}

func (s *Store) Clear(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete mirror record %q: %w", key, err)
	}

	return nil
}

func (s *Store) pathForKey(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", errors.New("mirror key is empty")
	}

	if strings.ContainsAny(trimmed, `/\`) || strings.HasPrefix(trimmed, ".") {
		return "", fmt.Errorf("invalid mirror key %q", key)
	}

	return filepath.Join(s.root, trimmed+recordSuffix), nil
}
