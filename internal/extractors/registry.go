package extractors

import (
	"sort"
	"strings"

	"github.com/arkivio/docload/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry maps lower-cased file suffixes to extraction strategies.
// Resolution never fails: unknown suffixes resolve to the plaintext
// fallback. A caller-supplied override map takes precedence over the
// registry's own mapping.
type Registry struct {
	bySuffix map[string]driven.Extractor
	fallback driven.Extractor
}

// NewRegistry creates an empty registry with the given fallback.
func NewRegistry(fallback driven.Extractor) *Registry {
	return &Registry{
		bySuffix: make(map[string]driven.Extractor),
		fallback: fallback,
	}
}

// DefaultRegistry creates the registry with the stock per-format
// strategies. transcriber may be nil; media files then yield
// metadata-only documents.
func DefaultRegistry(transcriber driven.Transcriber) *Registry {
	r := NewRegistry(NewPlaintext())

	pdf := NewPDF()
	office := NewOffice()
	image := NewImage()
	media := NewMedia(transcriber)

	r.Register(".pdf", pdf)
	r.Register(".docx", office)
	r.Register(".pptx", office)
	r.Register(".jpg", image)
	r.Register(".jpeg", image)
	r.Register(".png", image)
	r.Register(".mp3", media)
	r.Register(".mp4", media)
	r.Register(".csv", NewCSV())
	r.Register(".epub", NewEPUB())
	r.Register(".md", NewMarkdown())
	r.Register(".mbox", NewMbox())
	r.Register(".ipynb", NewNotebook())

	return r
}

// Register adds an extractor for a suffix. The suffix is stored
// lower-cased with its leading dot.
func (r *Registry) Register(suffix string, e driven.Extractor) {
	r.bySuffix[normaliseSuffix(suffix)] = e
}

// Resolve returns the extractor for a suffix. overrides, when non-nil,
// is consulted first. Unknown suffixes resolve to the fallback.
func (r *Registry) Resolve(suffix string, overrides map[string]driven.Extractor) driven.Extractor {
	key := normaliseSuffix(suffix)

	if overrides != nil {
		if e, ok := overrides[key]; ok {
			return e
		}
	}
	if e, ok := r.bySuffix[key]; ok {
		return e
	}
	return r.fallback
}

// Supports reports whether a suffix has a registered extractor.
// The fallback does not count: connectors use this to skip files
// that would only get a raw text decode.
func (r *Registry) Supports(suffix string) bool {
	_, ok := r.bySuffix[normaliseSuffix(suffix)]
	return ok
}

// Suffixes returns all registered suffixes, sorted.
func (r *Registry) Suffixes() []string {
	out := make([]string, 0, len(r.bySuffix))
	for s := range r.bySuffix {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func normaliseSuffix(suffix string) string {
	suffix = strings.ToLower(strings.TrimSpace(suffix))
	if suffix != "" && !strings.HasPrefix(suffix, ".") {
		suffix = "." + suffix
	}
	return suffix
}

// copyExtraInfo creates a shallow copy of caller metadata so extractors
// can attach their own fields without mutating the caller's map.
func copyExtraInfo(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src)+2)
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
