package extractors

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arkivio/docload/internal/core/domain"
	"github.com/arkivio/docload/internal/core/ports/driven"
	"github.com/arkivio/docload/internal/logger"
)

// Ensure Media implements the interface.
var _ driven.Extractor = (*Media)(nil)

// Media extracts text from audio/video files (.mp3, .mp4) through an
// external Transcriber. Without one configured, it produces a single
// metadata-only document so the file still appears in the run's output.
type Media struct {
	transcriber driven.Transcriber
}

// NewMedia creates a new media extractor. transcriber may be nil.
func NewMedia(transcriber driven.Transcriber) *Media {
	return &Media{transcriber: transcriber}
}

// Extract transcribes the media file.
func (e *Media) Extract(ctx context.Context, path string, extraInfo map[string]any) ([]domain.Document, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	info := copyExtraInfo(extraInfo)
	info["format"] = "media"
	info["file_name"] = filepath.Base(path)
	info["file_size"] = fi.Size()

	var text string
	if e.transcriber != nil {
		text, err = e.transcriber.Transcribe(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("transcribe %s: %w", filepath.Base(path), err)
		}
	} else {
		logger.Debug("no transcriber configured, metadata-only document for: %s", path)
	}

	return []domain.Document{{
		Text:      text,
		ExtraInfo: info,
	}}, nil
}
