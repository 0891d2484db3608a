package extractors

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/arkivio/docload/internal/core/domain"
	"github.com/arkivio/docload/internal/core/ports/driven"
)

// Ensure CSV implements the interface.
var _ driven.Extractor = (*CSV)(nil)

// CSV extracts tabular files into a single document, one comma-joined
// record per line.
type CSV struct{}

// NewCSV creates a new CSV extractor.
func NewCSV() *CSV {
	return &CSV{}
}

// Extract parses the file and joins records into text.
func (e *CSV) Extract(_ context.Context, path string, extraInfo map[string]any) ([]domain.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// Tolerate ragged rows; the goal is text, not schema validation.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	lines := make([]string, 0, len(records))
	for _, record := range records {
		lines = append(lines, strings.Join(record, ", "))
	}

	info := copyExtraInfo(extraInfo)
	info["format"] = "csv"
	info["row_count"] = len(records)

	return []domain.Document{{
		Text:      strings.Join(lines, "\n"),
		ExtraInfo: info,
	}}, nil
}
