package connectors

import (
	"path"
	"strings"
)

// MIMEExtensions maps provider MIME types to canonical file extensions.
// Cloud drive listings report MIME types rather than names with reliable
// suffixes; this table resolves them before extractor lookup.
var MIMEExtensions = map[string]string{
	"application/pdf": ".pdf",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   ".docx",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": ".pptx",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         ".xlsx",
	"application/vnd.google-apps.document":                                      ".gdoc",
	"application/vnd.google-apps.presentation":                                  ".gslides",
	"application/vnd.google-apps.spreadsheet":                                   ".gsheet",
	"image/jpeg":            ".jpg",
	"image/png":             ".png",
	"image/jpg":             ".jpg",
	"audio/mpeg":            ".mp3",
	"audio/mp3":             ".mp3",
	"video/mp4":             ".mp4",
	"video/mpeg":            ".mp4",
	"text/csv":              ".csv",
	"application/epub+zip":  ".epub",
	"text/markdown":         ".md",
	"application/x-ipynb+json": ".ipynb",
	"application/mbox":      ".mbox",
}

// SuffixForMIME resolves a provider MIME type to a file extension.
// Returns the empty string for unknown MIME types.
func SuffixForMIME(mimeType string) string {
	return MIMEExtensions[mimeType]
}

// SuffixFromName returns the lower-cased extension of a file name,
// including the leading dot.
func SuffixFromName(name string) string {
	return strings.ToLower(path.Ext(name))
}
