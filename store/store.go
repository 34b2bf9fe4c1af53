// Package store persists game progress as JSON-serializable key/value pairs.
// The simulation core consumes the Store interface through injection; it
// never touches the filesystem itself.
package store

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Store is the key/value persistence collaborator. Values must be
// JSON-serializable; Get reports false for missing keys without error.
type Store interface {
	Get(key string, v any) (bool, error)
	Set(key string, v any) error
	Delete(key string) error
	Keys() ([]string, error)
}

// Memory is a non-persisted Store for tests and headless runs
type Memory struct {
	data map[string]json.RawMessage
}

// NewMemory returns an empty in-memory store
func NewMemory() *Memory {
	return &Memory{data: make(map[string]json.RawMessage)}
}

func (m *Memory) Get(key string, v any) (bool, error) {
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

func (m *Memory) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	m.data[key] = raw
	return nil
}

func (m *Memory) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func (m *Memory) Keys() ([]string, error) {
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}
