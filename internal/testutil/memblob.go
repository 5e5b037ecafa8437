// internal/testutil/memblob.go
package testutil

import (
	"context"
	"io"
	"sync"

	"github.com/crestlinedev/crestline/internal/app/system/blob"
)

// MemBlobStore is an in-memory blob.Store for tests. It records every
// stored object and mirrors the real store's not-found semantics.
type MemBlobStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string

	// FailKeys lists keys whose Delete should fail, for exercising
	// best-effort cleanup paths.
	FailKeys map[string]error
}

func NewMemBlobStore() *MemBlobStore {
	return &MemBlobStore{
		objects: map[string][]byte{},
		types:   map[string]string{},
	}
}

func (m *MemBlobStore) Upload(ctx context.Context, key string, reader io.Reader, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	m.types[key] = contentType
	return nil
}

func (m *MemBlobStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.FailKeys[key]; ok {
		return err
	}
	if _, ok := m.objects[key]; !ok {
		return blob.ErrNotFound
	}
	delete(m.objects, key)
	delete(m.types, key)
	return nil
}

func (m *MemBlobStore) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok, nil
}

// ContentType returns the stored content type for key, if present.
func (m *MemBlobStore) ContentType(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ct, ok := m.types[key]
	return ct, ok
}

// Len returns the number of stored objects.
func (m *MemBlobStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

// Keys returns the keys of all stored objects.
func (m *MemBlobStore) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.objects))
	for k := range m.objects {
		keys = append(keys, k)
	}
	return keys
}
