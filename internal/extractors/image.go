package extractors

import (
	"context"
	"fmt"
	"path/filepath"

	"code.sajari.com/docconv/v2"

	"github.com/arkivio/docload/internal/core/domain"
	"github.com/arkivio/docload/internal/core/ports/driven"
)

// Ensure Image implements the interface.
var _ driven.Extractor = (*Image)(nil)

// Image extracts text from images (.jpg, .jpeg, .png) via docconv's
// OCR route. Requires a tesseract installation at runtime.
type Image struct{}

// NewImage creates a new image extractor.
func NewImage() *Image {
	return &Image{}
}

// Extract runs OCR over the image and returns one document.
func (e *Image) Extract(_ context.Context, path string, extraInfo map[string]any) ([]domain.Document, error) {
	res, err := docconv.ConvertPath(path)
	if err != nil {
		return nil, fmt.Errorf("ocr %s: %w", filepath.Base(path), err)
	}

	info := copyExtraInfo(extraInfo)
	info["format"] = "image"
	info["file_name"] = filepath.Base(path)

	return []domain.Document{{
		Text:      res.Body,
		ExtraInfo: info,
	}}, nil
}
