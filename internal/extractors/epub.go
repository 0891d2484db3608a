package extractors

import (
	"archive/zip"
	"context"
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"

	"github.com/arkivio/docload/internal/core/domain"
	"github.com/arkivio/docload/internal/core/ports/driven"
)

// Ensure EPUB implements the interface.
var _ driven.Extractor = (*EPUB)(nil)

// EPUB extracts e-books into a single document. An epub is a zip of
// XHTML content files; each is stripped to plain text in archive order.
type EPUB struct{}

// NewEPUB creates a new epub extractor.
func NewEPUB() *EPUB {
	return &EPUB{}
}

// Extract concatenates the stripped text of all content files.
func (e *EPUB) Extract(_ context.Context, path string, extraInfo map[string]any) ([]domain.Document, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open epub: %w", err)
	}
	defer reader.Close()

	var sections []string
	for _, file := range reader.File {
		if !isEpubContentFile(file.Name) {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("open epub entry %s: %w", file.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read epub entry %s: %w", file.Name, err)
		}

		if text := stripHTML(string(data)); text != "" {
			sections = append(sections, text)
		}
	}

	info := copyExtraInfo(extraInfo)
	info["format"] = "epub"

	return []domain.Document{{
		Text:      strings.Join(sections, "\n\n"),
		ExtraInfo: info,
	}}, nil
}

// isEpubContentFile reports whether an archive entry holds chapter text.
func isEpubContentFile(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".xhtml") ||
		strings.HasSuffix(lower, ".html") ||
		strings.HasSuffix(lower, ".htm")
}

// Pre-compiled regular expressions for HTML stripping.
var (
	scriptTag         = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag          = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	headTag           = regexp.MustCompile(`(?is)<head[^>]*>.*?</head>`)
	htmlComments      = regexp.MustCompile(`(?s)<!--.*?-->`)
	openBlockElements = regexp.MustCompile(`(?i)<(p|div|h[1-6]|li|tr|blockquote|pre|table|section|article)[^>]*>`)
	blockElements     = regexp.MustCompile(`(?i)</(p|div|br|hr|h[1-6]|li|tr|blockquote|pre|table|section|article)>`)
	brTags            = regexp.MustCompile(`(?i)<br\s*/?>`)
	allTags           = regexp.MustCompile(`<[^>]+>`)
	multiSpaces       = regexp.MustCompile(`[ \t]+`)
	htmlMultiNewline  = regexp.MustCompile(`\n{3,}`)
)

// stripHTML removes tags and extracts readable text content.
func stripHTML(content string) string {
	content = scriptTag.ReplaceAllString(content, "")
	content = styleTag.ReplaceAllString(content, "")
	content = headTag.ReplaceAllString(content, "")
	content = htmlComments.ReplaceAllString(content, "")

	// Block boundaries become newlines for readability
	content = openBlockElements.ReplaceAllString(content, "\n")
	content = blockElements.ReplaceAllString(content, "\n")
	content = brTags.ReplaceAllString(content, "\n")

	content = allTags.ReplaceAllString(content, "")
	content = html.UnescapeString(content)
	content = multiSpaces.ReplaceAllString(content, " ")
	content = htmlMultiNewline.ReplaceAllString(content, "\n\n")

	// Trim each line and drop empties
	lines := strings.Split(content, "\n")
	var result []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}
