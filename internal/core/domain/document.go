package domain

import "strconv"

// Document represents a normalised text document produced by extraction.
// One downloaded file may yield many documents (e.g. one per PDF page).
// A Document is immutable once produced and owned by the caller.
type Document struct {
	// ID is the unique identifier within an extraction run.
	// The orchestrator derives it from the local path and part index.
	ID string

	// Text is the extracted text content.
	Text string

	// ExtraInfo contains caller-supplied metadata merged with
	// extractor-attached fields.
	ExtraInfo map[string]any
}

// PartID builds the stable per-part document identifier for a file.
// Identical inputs always produce identical IDs, so re-running
// extraction on the same local file is idempotent.
func PartID(localPath string, part int) string {
	return localPath + "_part_" + strconv.Itoa(part)
}
