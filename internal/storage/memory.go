package storage

import (
	"context"
	"sync"
)

// Memory is an in-process Storage. It is used for ephemeral boards and tests.
type Memory struct {
	mu       sync.Mutex
	values   map[string]string
	writeErr error
	setCalls int
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCalls++
	if m.writeErr != nil {
		return m.writeErr
	}
	m.values[key] = value
	return nil
}

// FailWrites makes every subsequent write return err. Pass nil to recover.
func (m *Memory) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}

// SetCalls reports how many writes were attempted.
func (m *Memory) SetCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.setCalls
}
