package store

import (
	"maps"
	"sync"
)

type memoryMedium struct {
	mu     sync.RWMutex
	values map[string]string
	quota  int
	closed bool
}

// NewMemoryMedium returns an in-process [Medium]. quota bounds the total
// size in bytes of all keys and values; zero means unbounded.
func NewMemoryMedium(quota int) Medium {
	return &memoryMedium{values: make(map[string]string), quota: quota}
}

func (m *memoryMedium) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return "", false, ErrMediumClosed
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryMedium) Set(key, value string) error {
	return m.SetMany(map[string]string{key: value})
}

func (m *memoryMedium) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrMediumClosed
	}
	delete(m.values, key)
	return nil
}

func (m *memoryMedium) SetMany(values map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrMediumClosed
	}

	if m.quota > 0 {
		next := maps.Clone(m.values)
		maps.Copy(next, values)
		if size(next) > m.quota {
			return ErrQuotaExceeded
		}
	}

	maps.Copy(m.values, values)
	return nil
}

func (m *memoryMedium) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func size(values map[string]string) int {
	n := 0
	for k, v := range values {
		n += len(k) + len(v)
	}
	return n
}
