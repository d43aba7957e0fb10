package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/medportal-cli/internal/domain"
	"github.com/stretchr/testify/mock"
)

type memoryMirror struct {
	mu      sync.Mutex
	records map[string][]byte
	saves   map[string]int
	loadErr error
	saveErr error
}

func newMemoryMirror() *memoryMirror {
	return &memoryMirror{records: map[string][]byte{}, saves: map[string]int{}}
}

func (m *memoryMirror) Load(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loadErr != nil {
		return nil, false, m.loadErr
	}
	value, ok := m.records[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (m *memoryMirror) Save(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.saveErr != nil {
		return m.saveErr
	}
	m.records[key] = append([]byte(nil), value...)
	m.saves[key]++
	return nil
}

func (m *memoryMirror) Clear(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, key)
	return nil
}

func (m *memoryMirror) saveCount(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.saves[key]
}

func (m *memoryMirror) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.records[key]
	return ok
}

type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func newStepClock() *stepClock {
	return &stepClock{now: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *stepClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func sequentialTurnIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s%d", domain.LocalTurnIDPrefix, n)
	}
}

func newTestState(mirror *memoryMirror, clock *stepClock) *State {
	return NewState(mirror, WithSessionOptions(
		domain.WithSessionClock(clock.Now),
		domain.WithTurnIDGenerator(sequentialTurnIDs()),
	))
}

var (
	patient = domain.User{ID: "u1", Email: "ana@example.com", Name: "Ana Patient", Role: domain.RolePatient}
	doctor  = domain.User{ID: "1", Email: "sarah.johnson@medicare.com", Name: "Dr. Sarah Johnson", Role: domain.RoleDoctor, Specialty: "General Practice"}
)

func mockAnyContext() interface{} {
	return mock.Anything
}
