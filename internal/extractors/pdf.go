package extractors

import (
	"context"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/arkivio/docload/internal/core/domain"
	"github.com/arkivio/docload/internal/core/ports/driven"
	"github.com/arkivio/docload/internal/logger"
)

// Ensure PDF implements the interface.
var _ driven.Extractor = (*PDF)(nil)

// PDF extracts text from PDF files, one document per page.
// Page order is preserved as part order.
type PDF struct{}

// NewPDF creates a new PDF extractor.
func NewPDF() *PDF {
	return &PDF{}
}

// Extract returns one document per page of the PDF.
func (e *PDF) Extract(_ context.Context, path string, extraInfo map[string]any) ([]domain.Document, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	totalPages := reader.NumPage()
	docs := make([]domain.Document, 0, totalPages)

	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			logger.Warn("pdf: null page %d in %s", pageNum, path)
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extract pdf page %d: %w", pageNum, err)
		}

		info := copyExtraInfo(extraInfo)
		info["page_label"] = pageNum
		info["total_pages"] = totalPages

		docs = append(docs, domain.Document{
			Text:      text,
			ExtraInfo: info,
		})
	}

	return docs, nil
}
