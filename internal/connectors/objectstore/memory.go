package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/arkivio/docload/internal/core/domain"
)

func init() {
	RegisterScheme("memory", func(_ map[string]string) (Backend, error) {
		return NewMemory(nil), nil
	})
}

// MemoryBackend is a map-backed object store used in tests and for
// embedding pre-loaded content.
type MemoryBackend struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

var _ Backend = (*MemoryBackend)(nil)

// NewMemory creates a memory backend pre-loaded with objects.
func NewMemory(objects map[string][]byte) *MemoryBackend {
	store := make(map[string][]byte, len(objects))
	for k, v := range objects {
		store[strings.TrimPrefix(k, "/")] = v
	}
	return &MemoryBackend{objects: store}
}

// Put stores an object.
func (b *MemoryBackend) Put(path string, data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[strings.TrimPrefix(path, "/")] = data
}

// Scan enumerates objects under prefix in sorted order.
func (b *MemoryBackend) Scan(_ context.Context, prefix string) ([]Entry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	prefix = strings.TrimPrefix(prefix, "/")
	var entries []Entry
	for path, data := range b.objects {
		if strings.HasPrefix(path, prefix) {
			entries = append(entries, Entry{Path: path, Size: int64(len(data))})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })

	return entries, nil
}

// Read opens an object for reading.
func (b *MemoryBackend) Read(_ context.Context, path string) (io.ReadCloser, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, ok := b.objects[strings.TrimPrefix(path, "/")]
	if !ok {
		return nil, fmt.Errorf("%w: object %s", domain.ErrNotFound, path)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Stat returns the entry for one object.
func (b *MemoryBackend) Stat(_ context.Context, path string) (Entry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	key := strings.TrimPrefix(path, "/")
	data, ok := b.objects[key]
	if !ok {
		return Entry{}, fmt.Errorf("%w: object %s", domain.ErrNotFound, path)
	}
	return Entry{Path: key, Size: int64(len(data))}, nil
}
