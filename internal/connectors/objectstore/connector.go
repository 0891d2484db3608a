package objectstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/arkivio/docload/internal/connectors"
	"github.com/arkivio/docload/internal/core/domain"
	"github.com/arkivio/docload/internal/core/ports/driven"
	"github.com/arkivio/docload/internal/logger"
)

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// Connector adapts an object store backend to the Connector port.
type Connector struct {
	scheme   string
	backend  Backend
	registry driven.ExtractorRegistry
	closed   bool
}

// New opens the backend for scheme with its options and wraps it in a
// connector. registry decides which suffixes survive directory listings.
func New(scheme string, opts map[string]string, registry driven.ExtractorRegistry) (*Connector, error) {
	backend, err := OpenBackend(scheme, opts)
	if err != nil {
		return nil, err
	}
	return NewWithBackend(scheme, backend, registry), nil
}

// NewWithBackend wraps an already-constructed backend.
func NewWithBackend(scheme string, backend Backend, registry driven.ExtractorRegistry) *Connector {
	return &Connector{
		scheme:   scheme,
		backend:  backend,
		registry: registry,
	}
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "objectstore/" + c.scheme
}

// List enumerates remote files. A trailing separator means recursive
// enumeration under the prefix; any other path yields exactly one
// descriptor. Directory entries with unsupported suffixes are skipped
// silently at debug level.
func (c *Connector) List(ctx context.Context, path string) ([]domain.RemoteFile, error) {
	if c.closed {
		return nil, domain.ErrConnectorClosed
	}

	if !strings.HasSuffix(path, "/") {
		entry, err := c.backend.Stat(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		return []domain.RemoteFile{c.toRemoteFile(entry)}, nil
	}

	entries, err := c.backend.Scan(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}

	files := make([]domain.RemoteFile, 0, len(entries))
	for _, entry := range entries {
		suffix := connectors.SuffixFromName(entry.Path)
		if !c.registry.Supports(suffix) {
			logger.Debug("objectstore: file suffix not supported, skipping: %s", entry.Path)
			continue
		}
		files = append(files, c.toRemoteFile(entry))
	}

	return files, nil
}

// Fetch streams the object into destDir under a generated filename.
func (c *Connector) Fetch(ctx context.Context, file domain.RemoteFile, destDir string) (domain.DownloadedFile, error) {
	if c.closed {
		return domain.DownloadedFile{}, domain.ErrConnectorClosed
	}

	logger.Debug("objectstore: downloading %s", file.SourceID)

	reader, err := c.backend.Read(ctx, file.SourceID)
	if err != nil {
		return domain.DownloadedFile{}, fmt.Errorf("read %s: %w", file.SourceID, err)
	}
	defer reader.Close()

	return connectors.WriteTemp(file.SourceID, file.Suffix, destDir, reader)
}

// Close releases resources.
func (c *Connector) Close() error {
	c.closed = true
	return nil
}

func (c *Connector) toRemoteFile(entry Entry) domain.RemoteFile {
	return domain.RemoteFile{
		SourceID: entry.Path,
		Suffix:   connectors.SuffixFromName(entry.Path),
		Size:     entry.Size,
	}
}
