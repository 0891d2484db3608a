package services

import (
	"context"
	"fmt"

	"github.com/arkivio/docload/internal/core/domain"
	"github.com/arkivio/docload/internal/core/ports/driven"
	"github.com/arkivio/docload/internal/core/ports/driving"
	"github.com/arkivio/docload/internal/logger"
)

// Ensure Loader implements the interface.
var _ driving.Loader = (*Loader)(nil)

// Loader runs the full ingestion pipeline for one connector: list,
// download into a scoped temp directory, extract, clean up.
type Loader struct {
	connector driven.Connector
	registry  driven.ExtractorRegistry

	// tempBase overrides the system temp directory when non-empty.
	tempBase string

	// downloaded retains the last run's files for DocumentList.
	downloaded []domain.DownloadedFile
}

// NewLoader creates a loader over a connector and extractor registry.
func NewLoader(connector driven.Connector, registry driven.ExtractorRegistry) *Loader {
	return &Loader{
		connector: connector,
		registry:  registry,
	}
}

// SetTempBase sets the parent directory for scoped download
// directories. Used by tests.
func (l *Loader) SetTempBase(dir string) {
	l.tempBase = dir
}

// Load ingests everything reachable under path. Listing and extraction
// failures abort the run; individual download failures only shrink the
// result. The scoped download directory is removed before Load returns,
// success or not.
func (l *Loader) Load(
	ctx context.Context,
	path string,
	overrides map[string]driven.Extractor,
	metadataFn driving.MetadataFunc,
) ([]domain.Document, error) {
	files, err := l.connector.List(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}
	logger.Debug("loader: %d files listed under %s", len(files), path)

	scope, err := NewTempScope(l.tempBase)
	if err != nil {
		return nil, err
	}
	defer func() {
		if rerr := scope.Release(); rerr != nil {
			logger.Warn("release temp scope: %v", rerr)
		}
	}()

	l.downloaded = FetchMany(ctx, l.connector, files, scope.Dir())
	logger.Debug("loader: %d of %d files downloaded", len(l.downloaded), len(files))

	return ExtractAll(ctx, l.registry, l.downloaded, overrides, metadataFn)
}

// DocumentList reports the files downloaded by the most recent run,
// regardless of whether extraction succeeded.
func (l *Loader) DocumentList() []domain.DocumentListItem {
	items := make([]domain.DocumentListItem, 0, len(l.downloaded))
	for _, df := range l.downloaded {
		items = append(items, domain.DocumentListItem{
			Link:      df.SourcePath,
			IndexedOn: df.IndexedOn,
			Size:      df.Size,
		})
	}
	return items
}
