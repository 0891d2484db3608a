package connectors

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/arkivio/docload/internal/core/domain"
)

// WriteTemp streams r into a new file under destDir with a
// collision-free generated name preserving suffix, and records the
// download. Size is the number of bytes actually written, not the
// remote-reported size, to tolerate inconsistent source metadata.
func WriteTemp(sourcePath, suffix, destDir string, r io.Reader) (domain.DownloadedFile, error) {
	localPath := filepath.Join(destDir, uuid.New().String()+suffix)

	f, err := os.Create(localPath)
	if err != nil {
		return domain.DownloadedFile{}, fmt.Errorf("create %s: %w", localPath, err)
	}

	written, err := io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		// Partial files must not survive into extraction.
		os.Remove(localPath)
		return domain.DownloadedFile{}, fmt.Errorf("write %s: %w", localPath, err)
	}

	return domain.DownloadedFile{
		SourcePath: sourcePath,
		LocalPath:  localPath,
		IndexedOn:  time.Now().Unix(),
		Size:       written,
	}, nil
}
