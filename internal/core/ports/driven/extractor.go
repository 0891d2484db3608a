package driven

import (
	"context"

	"github.com/arkivio/docload/internal/core/domain"
)

// Extractor converts one downloaded file into text documents.
// Each extractor handles specific file suffixes (e.g. ".pdf", ".docx").
// Multi-part formats return one Document per part in part-index order;
// the orchestrator assigns IDs afterwards.
type Extractor interface {
	// Extract reads the file at path and returns its documents.
	// extraInfo is caller-supplied metadata to attach to every document;
	// extractors may add their own fields but must not drop the caller's.
	Extract(ctx context.Context, path string, extraInfo map[string]any) ([]domain.Document, error)
}

// ExtractorRegistry resolves an extractor for a file suffix.
// Unknown suffixes resolve to a plaintext fallback, so resolution
// never fails; connectors use Supports to skip files up front.
type ExtractorRegistry interface {
	// Resolve returns the extractor for a suffix. overrides, when
	// non-nil, takes precedence over the registry's own mapping.
	// Suffix matching is case-insensitive.
	Resolve(suffix string, overrides map[string]Extractor) Extractor

	// Supports reports whether a suffix has a registered extractor
	// (the fallback does not count).
	Supports(suffix string) bool

	// Suffixes returns all registered suffixes.
	Suffixes() []string
}

// Transcriber converts audio/video media into text. It wraps an external
// speech-to-text collaborator; without one, media extraction yields
// metadata-only documents.
type Transcriber interface {
	// Transcribe returns the spoken text of the media file at path.
	Transcribe(ctx context.Context, path string) (string, error)
}
