package drive

// Config holds Google Drive connector configuration.
type Config struct {
	// Root is the human-readable root folder reference, kept for
	// provenance in logs and document metadata.
	Root string

	// SelectedFolderID is the folder whose children are listed.
	// Defaults to the provider's root alias.
	SelectedFolderID string

	// PageSize is the listing page size for API requests.
	PageSize int64
}

// DefaultFolderID is the Drive alias for the account's root folder.
const DefaultFolderID = "root"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		SelectedFolderID: DefaultFolderID,
		PageSize:         100,
	}
}

// folderID resolves the configured folder, falling back to the root alias.
func (c *Config) folderID() string {
	if c.SelectedFolderID == "" {
		return DefaultFolderID
	}
	return c.SelectedFolderID
}
