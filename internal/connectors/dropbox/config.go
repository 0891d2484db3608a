package dropbox

// MaxPageEntries caps how many entries a folder listing returns.
// Listings read a single page only; deeper pagination is not implemented.
const MaxPageEntries = 100

// Config holds Dropbox connector settings.
type Config struct {
	// Root is the folder path listings enumerate, e.g. "/Documents".
	// Empty means the account root.
	Root string
	// PageLimit bounds the number of entries per listing.
	PageLimit uint32
}

// DefaultConfig returns the default Dropbox configuration.
func DefaultConfig() *Config {
	return &Config{
		Root:      "",
		PageLimit: MaxPageEntries,
	}
}

func (c *Config) limit() uint32 {
	if c.PageLimit == 0 || c.PageLimit > MaxPageEntries {
		return MaxPageEntries
	}
	return c.PageLimit
}
