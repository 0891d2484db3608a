package services

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/arkivio/docload/internal/core/domain"
	"github.com/arkivio/docload/internal/core/ports/driven"
	"github.com/arkivio/docload/internal/logger"
)

// TempScope owns a temporary directory for the lifetime of one
// ingestion run. Downloaded files live inside it and disappear with it;
// nothing may read from the directory after Release.
type TempScope struct {
	dir string
}

// NewTempScope creates a fresh scoped directory under base. An empty
// base uses the system default.
func NewTempScope(base string) (*TempScope, error) {
	dir, err := os.MkdirTemp(base, "docload-*")
	if err != nil {
		return nil, fmt.Errorf("create temp scope: %w", err)
	}
	return &TempScope{dir: dir}, nil
}

// Dir returns the scoped directory path.
func (s *TempScope) Dir() string {
	return s.dir
}

// Release removes the directory and everything in it.
func (s *TempScope) Release() error {
	return os.RemoveAll(s.dir)
}

// Fetch downloads a single remote file into destDir.
func Fetch(ctx context.Context, connector driven.Connector, file domain.RemoteFile, destDir string) (domain.DownloadedFile, error) {
	return connector.Fetch(ctx, file, destDir)
}

// FetchMany downloads every descriptor concurrently, one goroutine per
// file. A failed fetch is logged and dropped from the result; the rest
// of the batch is unaffected. No ordering is guaranteed.
func FetchMany(ctx context.Context, connector driven.Connector, files []domain.RemoteFile, destDir string) []domain.DownloadedFile {
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		downloaded []domain.DownloadedFile
	)

	for _, file := range files {
		wg.Add(1)
		go func(file domain.RemoteFile) {
			defer wg.Done()

			df, err := connector.Fetch(ctx, file, destDir)
			if err != nil {
				logger.Warn("download failed for %s: %v", file.SourceID, err)
				return
			}

			mu.Lock()
			downloaded = append(downloaded, df)
			mu.Unlock()
		}(file)
	}

	wg.Wait()
	return downloaded
}
