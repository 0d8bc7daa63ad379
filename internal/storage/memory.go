package storage

import (
	"context"
	"maps"
)

// MemoryKV is an in-memory KV used in tests and as the degraded backend when
// the local database cannot be opened. Data lives only for the process.
type MemoryKV struct {
	data map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (m *MemoryKV) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *MemoryKV) List(_ context.Context) (map[string][]byte, error) {
	return maps.Clone(m.data), nil
}
