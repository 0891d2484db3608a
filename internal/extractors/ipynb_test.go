package extractors

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotebook_Extract(t *testing.T) {
	t.Run("concatenates markdown and code cells", func(t *testing.T) {
		nb := `{
			"cells": [
				{"cell_type": "markdown", "source": ["# Analysis\n", "Intro text"]},
				{"cell_type": "code", "source": "print('hi')"},
				{"cell_type": "raw", "source": "ignored"},
				{"cell_type": "code", "source": []}
			]
		}`
		path := filepath.Join(t.TempDir(), "analysis.ipynb")
		require.NoError(t, os.WriteFile(path, []byte(nb), 0600))

		docs, err := NewNotebook().Extract(context.Background(), path, nil)

		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "# Analysis\nIntro text\n\nprint('hi')", docs[0].Text)
		assert.Equal(t, 4, docs[0].ExtraInfo["cell_count"])
		assert.Equal(t, "ipynb", docs[0].ExtraInfo["format"])
	})

	t.Run("invalid json returns error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.ipynb")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

		_, err := NewNotebook().Extract(context.Background(), path, nil)

		assert.ErrorContains(t, err, "parse notebook")
	})
}
