package extractors

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/arkivio/docload/internal/core/domain"
	"github.com/arkivio/docload/internal/core/ports/driven"
)

// Ensure Notebook implements the interface.
var _ driven.Extractor = (*Notebook)(nil)

// Notebook extracts Jupyter notebooks (.ipynb) into a single document.
// Markdown and code cell sources are concatenated in cell order.
type Notebook struct{}

// NewNotebook creates a new notebook extractor.
func NewNotebook() *Notebook {
	return &Notebook{}
}

// notebookFile mirrors the subset of the nbformat JSON structure needed
// for text extraction. Cell source may be a string or a list of lines.
type notebookFile struct {
	Cells []notebookCell `json:"cells"`
}

type notebookCell struct {
	CellType string          `json:"cell_type"`
	Source   json.RawMessage `json:"source"`
}

// Extract parses the notebook JSON and joins cell sources.
func (e *Notebook) Extract(_ context.Context, path string, extraInfo map[string]any) ([]domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var nb notebookFile
	if err := json.Unmarshal(data, &nb); err != nil {
		return nil, fmt.Errorf("parse notebook: %w", err)
	}

	var sections []string
	for _, cell := range nb.Cells {
		if cell.CellType != "markdown" && cell.CellType != "code" {
			continue
		}
		src := cellSource(cell.Source)
		if src != "" {
			sections = append(sections, src)
		}
	}

	info := copyExtraInfo(extraInfo)
	info["format"] = "ipynb"
	info["cell_count"] = len(nb.Cells)

	return []domain.Document{{
		Text:      strings.Join(sections, "\n\n"),
		ExtraInfo: info,
	}}, nil
}

// cellSource decodes a cell source that is either a string or a list of
// line strings, per the nbformat spec.
func cellSource(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var lines []string
	if err := json.Unmarshal(raw, &lines); err == nil {
		return strings.Join(lines, "")
	}
	return ""
}
