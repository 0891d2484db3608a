// Package objectstore provides a connector over scheme-addressed object
// storage backends. A backend is selected by scheme name plus an opaque
// option map, mirroring how object store clients are configured
// (credentials, region, bucket and the like are backend-specific).
package objectstore

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/arkivio/docload/internal/core/domain"
)

// Entry is one object found by a scan.
type Entry struct {
	// Path is the object's key within the store.
	Path string

	// Size is the store-reported object size in bytes.
	Size int64
}

// Backend is the minimal object store capability the connector needs:
// enumerate under a prefix and read one object to completion.
type Backend interface {
	// Scan enumerates all objects under prefix, recursively.
	Scan(ctx context.Context, prefix string) ([]Entry, error)

	// Read opens the object at path for streaming.
	Read(ctx context.Context, path string) (io.ReadCloser, error)

	// Stat returns the entry for a single object.
	Stat(ctx context.Context, path string) (Entry, error)
}

// Opener constructs a backend from its scheme-specific options.
type Opener func(opts map[string]string) (Backend, error)

var (
	openersMu sync.RWMutex
	openers   = make(map[string]Opener)
)

// RegisterScheme makes a backend constructor available under a scheme
// name. Called from backend init functions.
func RegisterScheme(scheme string, opener Opener) {
	openersMu.Lock()
	defer openersMu.Unlock()
	openers[scheme] = opener
}

// OpenBackend constructs the backend for a scheme with its options.
func OpenBackend(scheme string, opts map[string]string) (Backend, error) {
	openersMu.RLock()
	opener, ok := openers[scheme]
	openersMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: object store scheme %q", domain.ErrUnsupportedType, scheme)
	}
	return opener(opts)
}
