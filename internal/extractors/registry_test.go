package extractors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkivio/docload/internal/core/domain"
	"github.com/arkivio/docload/internal/core/ports/driven"
)

// stubExtractor records whether it was invoked.
type stubExtractor struct {
	called bool
}

func (s *stubExtractor) Extract(_ context.Context, _ string, extraInfo map[string]any) ([]domain.Document, error) {
	s.called = true
	return []domain.Document{{Text: "stub", ExtraInfo: extraInfo}}, nil
}

func TestDefaultRegistry_SupportedSuffixes(t *testing.T) {
	r := DefaultRegistry(nil)

	supported := []string{
		".pdf", ".docx", ".pptx", ".jpg", ".jpeg", ".png",
		".mp3", ".mp4", ".csv", ".epub", ".md", ".mbox", ".ipynb",
	}
	for _, suffix := range supported {
		t.Run(suffix, func(t *testing.T) {
			assert.True(t, r.Supports(suffix), "expected %s to be supported", suffix)
		})
	}

	assert.False(t, r.Supports(".xyz"))
	assert.False(t, r.Supports(".gdoc"))
	assert.False(t, r.Supports(""))
}

func TestRegistry_Resolve(t *testing.T) {
	r := DefaultRegistry(nil)

	t.Run("case insensitive lookup", func(t *testing.T) {
		assert.IsType(t, &PDF{}, r.Resolve(".PDF", nil))
		assert.IsType(t, &Markdown{}, r.Resolve(".MD", nil))
	})

	t.Run("missing leading dot tolerated", func(t *testing.T) {
		assert.IsType(t, &CSV{}, r.Resolve("csv", nil))
	})

	t.Run("unknown suffix resolves to fallback", func(t *testing.T) {
		assert.IsType(t, &Plaintext{}, r.Resolve(".xyz", nil))
	})

	t.Run("override takes precedence over registry", func(t *testing.T) {
		stub := &stubExtractor{}
		overrides := map[string]driven.Extractor{".pdf": stub}

		resolved := r.Resolve(".pdf", overrides)

		docs, err := resolved.Extract(context.Background(), "ignored", nil)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.True(t, stub.called)
	})

	t.Run("override for unregistered suffix also applies", func(t *testing.T) {
		stub := &stubExtractor{}
		overrides := map[string]driven.Extractor{".xyz": stub}

		resolved := r.Resolve(".xyz", overrides)

		_, err := resolved.Extract(context.Background(), "ignored", nil)
		require.NoError(t, err)
		assert.True(t, stub.called)
	})
}

func TestRegistry_Suffixes(t *testing.T) {
	r := DefaultRegistry(nil)

	suffixes := r.Suffixes()

	assert.Len(t, suffixes, 13)
	assert.Contains(t, suffixes, ".pdf")
	assert.Contains(t, suffixes, ".ipynb")
	// Sorted output
	for i := 1; i < len(suffixes); i++ {
		assert.Less(t, suffixes[i-1], suffixes[i])
	}
}
