package kv

import "context"

// InMemoryRepository is a map-backed Repository for tests and throwaway
// sessions. It performs no I/O and never fails.
type InMemoryRepository struct {
	data map[string][]byte
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{data: make(map[string][]byte)}
}

func (r *InMemoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (r *InMemoryRepository) Set(_ context.Context, key string, value []byte) error {
	r.data[key] = append([]byte(nil), value...)
	return nil
}

func (r *InMemoryRepository) Delete(_ context.Context, key string) error {
	delete(r.data, key)
	return nil
}

func (r *InMemoryRepository) Clear(_ context.Context) error {
	r.data = make(map[string][]byte)
	return nil
}
