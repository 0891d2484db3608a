package driving

import (
	"context"

	"github.com/arkivio/docload/internal/core/domain"
	"github.com/arkivio/docload/internal/core/ports/driven"
)

// MetadataFunc computes caller-supplied metadata for a file, keyed by its
// source path. It is called synchronously before the file's extraction
// task is scheduled.
type MetadataFunc func(sourcePath string) map[string]any

// Loader runs the ingestion pipeline end to end:
// enumerate -> download (parallel) -> extract (parallel) -> merge.
type Loader interface {
	// Load ingests everything under path and returns the extracted
	// documents. overrides, when non-nil, maps file suffixes to
	// caller-provided extractors taking precedence over the default
	// registry. metadataFn, when non-nil, supplies per-file metadata.
	//
	// Per-file download failures are logged and skipped; an extraction
	// failure aborts the batch. Temporary storage for the run is
	// released before Load returns, on every path.
	Load(ctx context.Context, path string, overrides map[string]driven.Extractor, metadataFn MetadataFunc) ([]domain.Document, error)

	// DocumentList returns the post-hoc view of the last run's
	// downloaded files, independent of extraction success.
	DocumentList() []domain.DocumentListItem
}
