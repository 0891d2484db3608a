package extractors

import (
	"context"
	"os"
	"regexp"
	"strings"

	"github.com/arkivio/docload/internal/core/domain"
	"github.com/arkivio/docload/internal/core/ports/driven"
)

// Ensure Markdown implements the interface.
var _ driven.Extractor = (*Markdown)(nil)

// Markdown extracts markdown files into a single plain text document
// with formatting markers stripped.
type Markdown struct{}

// NewMarkdown creates a new markdown extractor.
func NewMarkdown() *Markdown {
	return &Markdown{}
}

// Extract strips markdown formatting from the file content.
func (e *Markdown) Extract(_ context.Context, path string, extraInfo map[string]any) ([]domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	info := copyExtraInfo(extraInfo)
	info["format"] = "markdown"

	return []domain.Document{{
		Text:      stripMarkdown(decodeUTF8(data)),
		ExtraInfo: info,
	}}, nil
}

// Pre-compiled regular expressions for markdown stripping.
var (
	mdCodeBlock    = regexp.MustCompile("(?s)```[^`]*```")
	mdInlineCode   = regexp.MustCompile("`[^`]+`")
	mdImages       = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	mdLinks        = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	mdHeadings     = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	mdBlockquote   = regexp.MustCompile(`(?m)^>\s*`)
	mdHorizRule    = regexp.MustCompile(`(?m)^[-*_]{3,}\s*$`)
	mdListMarkers  = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	mdNumberedList = regexp.MustCompile(`(?m)^\s*\d+\.\s+`)
	mdMultiNewline = regexp.MustCompile(`\n{3,}`)
)

// stripMarkdown removes common markdown formatting for plain text content.
// This is a simplified implementation that handles common cases.
func stripMarkdown(content string) string {
	content = mdCodeBlock.ReplaceAllString(content, "")
	content = mdInlineCode.ReplaceAllString(content, "")
	content = mdImages.ReplaceAllString(content, "")

	// Convert links [text](url) to just text
	content = mdLinks.ReplaceAllString(content, "$1")

	content = mdHeadings.ReplaceAllString(content, "")

	// Remove bold/italic markers
	content = strings.ReplaceAll(content, "**", "")
	content = strings.ReplaceAll(content, "__", "")
	content = strings.ReplaceAll(content, "*", "")
	content = strings.ReplaceAll(content, "_", " ")

	content = mdBlockquote.ReplaceAllString(content, "")
	content = mdHorizRule.ReplaceAllString(content, "")
	content = mdListMarkers.ReplaceAllString(content, "")
	content = mdNumberedList.ReplaceAllString(content, "")
	content = mdMultiNewline.ReplaceAllString(content, "\n\n")

	return strings.TrimSpace(content)
}
