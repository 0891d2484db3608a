package services

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/arkivio/docload/internal/core/domain"
	"github.com/arkivio/docload/internal/core/ports/driven"
	"github.com/arkivio/docload/internal/core/ports/driving"
	"github.com/arkivio/docload/internal/logger"
)

// ExtractAll fans extraction out across the downloaded files, one
// goroutine per file, and fans the results back in grouped per file in
// input order. metadataFn, when given, is called synchronously per file
// before that file's extraction is scheduled.
//
// Unlike FetchMany, a single extraction failure aborts the whole batch:
// the first error cancels the remaining work and propagates.
func ExtractAll(
	ctx context.Context,
	registry driven.ExtractorRegistry,
	files []domain.DownloadedFile,
	overrides map[string]driven.Extractor,
	metadataFn driving.MetadataFunc,
) ([]domain.Document, error) {
	results := make([][]domain.Document, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, file := range files {
		var extraInfo map[string]any
		if metadataFn != nil {
			extraInfo = metadataFn(file.SourcePath)
		}

		extractor := registry.Resolve(filepath.Ext(file.LocalPath), overrides)

		g.Go(func() error {
			logger.Debug("extracting %s", file.LocalPath)

			docs, err := extractor.Extract(gctx, file.LocalPath, extraInfo)
			if err != nil {
				return fmt.Errorf("extract %s: %w", file.LocalPath, err)
			}
			// Part identifiers are deterministic in local path and
			// part index, so re-extraction yields identical ids.
			for part := range docs {
				docs[part].ID = domain.PartID(file.LocalPath, part)
			}
			results[i] = docs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var docs []domain.Document
	for _, r := range results {
		docs = append(docs, r...)
	}
	return docs, nil
}
