package extractors

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv/v2"

	"github.com/arkivio/docload/internal/core/domain"
	"github.com/arkivio/docload/internal/core/ports/driven"
)

// Ensure Office implements the interface.
var _ driven.Extractor = (*Office)(nil)

// Office extracts text from OOXML documents (.docx, .pptx) through the
// docconv converter, producing one document per file.
type Office struct{}

// NewOffice creates a new office document extractor.
func NewOffice() *Office {
	return &Office{}
}

// Extract converts the document body to plain text.
func (e *Office) Extract(_ context.Context, path string, extraInfo map[string]any) ([]domain.Document, error) {
	res, err := docconv.ConvertPath(path)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", filepath.Base(path), err)
	}

	info := copyExtraInfo(extraInfo)
	info["format"] = strings.TrimPrefix(filepath.Ext(path), ".")
	for k, v := range res.Meta {
		// Converter metadata must not clobber caller-supplied fields.
		if _, exists := info[k]; !exists {
			info[k] = v
		}
	}

	return []domain.Document{{
		Text:      res.Body,
		ExtraInfo: info,
	}}, nil
}
