package driven

import (
	"context"

	"github.com/arkivio/docload/internal/core/domain"
)

// Connector enumerates and fetches files from a data source.
// Each connector type (object store, Google Drive, Dropbox) implements
// this interface.
type Connector interface {
	// Type returns the connector type identifier.
	Type() string

	// List enumerates remote files under a path.
	// A path with a trailing separator is treated as a directory and
	// enumerated recursively (object stores) or as a flat folder listing
	// (cloud drives). Any other path yields exactly one descriptor.
	//
	// Entries whose suffix has no registered extractor are skipped with
	// a debug log; a single entry's metadata failure is skipped likewise.
	// An error is returned only when the listing call itself fails
	// (bad credentials, unreachable backend), which is fatal for the
	// whole invocation.
	List(ctx context.Context, path string) ([]domain.RemoteFile, error)

	// Fetch streams the remote file's bytes fully into a new file under
	// destDir, using a collision-free generated filename that preserves
	// the original suffix. Size is computed from bytes actually written,
	// not from remote-reported metadata.
	Fetch(ctx context.Context, file domain.RemoteFile, destDir string) (domain.DownloadedFile, error)

	// Close releases resources.
	Close() error
}
