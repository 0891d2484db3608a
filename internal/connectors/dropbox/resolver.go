package dropbox

import (
	"fmt"
	"net/url"
	"strings"
)

// ResolveWebURL converts a dropbox:// URI to a web URL. The metadata
// mapping may carry the entry's display path under "path" and the file
// id under "file_id"; the path produces the most useful link.
func ResolveWebURL(uri string, metadata map[string]any) string {
	if path, ok := metadata["path"].(string); ok && path != "" {
		encoded := url.PathEscape(strings.TrimPrefix(path, "/"))
		return fmt.Sprintf("https://www.dropbox.com/home/%s", encoded)
	}

	// Preview links require the file to be shared, so this is a
	// best-effort fallback.
	if fileID, ok := metadata["file_id"].(string); ok && fileID != "" {
		id := strings.TrimPrefix(fileID, "id:")
		return fmt.Sprintf("https://www.dropbox.com/preview/%s", id)
	}

	return "https://www.dropbox.com/home"
}
