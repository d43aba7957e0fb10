package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/medportal-cli/internal/ports"
	"github.com/redis/go-redis/v9"
)

// Store keeps mirror records as plain string values under
// mirror:<namespace>:<key>. A zero ttl keeps records forever.
type Store struct {
	client    *redis.Client
	namespace string
	ttl       time.Duration
}

var _ ports.MirrorStore = (*Store)(nil)

func NewStore(client *redis.Client, namespace string, ttl time.Duration) *Store {
	if client == nil {
		panic("mirror: redis client cannot be nil")
	}
	if ttl < 0 {
		ttl = 0
	}
	return &Store{client: client, namespace: namespace, ttl: ttl}
}

// NewClient builds a client and verifies the server answers.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("mirror: redis ping %s: %w", addr, err)
	}
	return client, nil
}

func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" {
		return errors.New("mirror key is empty")
	}

	if err := s.client.Set(ctx, s.recordKey(key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("mirror: failed to persist %s: %w", key, err)
	}
	return nil
}

func (s *Store) Load(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	data, err := s.client.Get(ctx, s.recordKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("mirror: failed to load %s: %w", key, err)
	}
	return data, true, nil
}

func (s *Store) Clear(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.client.Del(ctx, s.recordKey(key)).Err(); err != nil {
		return fmt.Errorf("mirror: failed to clear %s: %w", key, err)
	}
	return nil
}

func (s *Store) recordKey(key string) string {
	if s.namespace == "" {
		return fmt.Sprintf("mirror:%s", key)
	}
	return fmt.Sprintf("mirror:%s:%s", s.namespace, key)
}
