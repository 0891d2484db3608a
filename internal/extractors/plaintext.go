package extractors

import (
	"context"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/arkivio/docload/internal/core/domain"
	"github.com/arkivio/docload/internal/core/ports/driven"
)

// Ensure Plaintext implements the interface.
var _ driven.Extractor = (*Plaintext)(nil)

// Plaintext is the fallback extractor: it reads the whole file as UTF-8
// text with invalid sequences replaced, producing exactly one document.
type Plaintext struct{}

// NewPlaintext creates the fallback extractor.
func NewPlaintext() *Plaintext {
	return &Plaintext{}
}

// Extract reads the file as text.
func (e *Plaintext) Extract(_ context.Context, path string, extraInfo map[string]any) ([]domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return []domain.Document{{
		Text:      decodeUTF8(data),
		ExtraInfo: copyExtraInfo(extraInfo),
	}}, nil
}

// decodeUTF8 converts bytes to a string, replacing invalid sequences
// with the unicode replacement rune rather than failing.
func decodeUTF8(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	var b strings.Builder
	b.Grow(len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		b.WriteRune(r)
		data = data[size:]
	}
	return b.String()
}
