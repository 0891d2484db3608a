// Package dropbox implements the Dropbox connector ("drive B").
//
// Listing is flat and single-page: only the first page of direct
// children of the configured folder is enumerated, capped at
// MaxPageEntries. Folder entries are filtered out of listings.
package dropbox

import (
	"context"
	"fmt"

	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/files"

	"github.com/arkivio/docload/internal/connectors"
	"github.com/arkivio/docload/internal/core/domain"
	"github.com/arkivio/docload/internal/core/ports/driven"
	"github.com/arkivio/docload/internal/logger"
)

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// Connector enumerates and fetches files from Dropbox.
type Connector struct {
	client   files.Client
	cfg      *Config
	registry driven.ExtractorRegistry
	closed   bool
}

// New builds a Dropbox connector from a pre-validated credential
// mapping. The mapping must carry an access token under "token" or
// "access_token".
func New(credentials map[string]any, cfg *Config, registry driven.ExtractorRegistry) (*Connector, error) {
	token := tokenFromCredentials(credentials)
	if token == "" {
		return nil, fmt.Errorf("dropbox credentials missing access token: %w", domain.ErrAuthRequired)
	}

	client := files.New(dropbox.Config{
		Token:    token,
		LogLevel: dropbox.LogOff,
	})
	return NewWithClient(client, cfg, registry), nil
}

// NewWithClient wraps an existing Dropbox files client. Used by tests.
func NewWithClient(client files.Client, cfg *Config, registry driven.ExtractorRegistry) *Connector {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Connector{
		client:   client,
		cfg:      cfg,
		registry: registry,
	}
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "dropbox"
}

// List enumerates the direct children of the configured folder. The
// path argument overrides the configured root when non-empty. At most
// one page of entries is read.
func (c *Connector) List(ctx context.Context, path string) ([]domain.RemoteFile, error) {
	if c.closed {
		return nil, domain.ErrConnectorClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root := c.cfg.Root
	if path != "" {
		root = path
	}

	arg := files.NewListFolderArg(root)
	arg.Limit = c.cfg.limit()

	res, err := c.client.ListFolder(arg)
	if err != nil {
		// A failed listing call is fatal for the whole invocation.
		return nil, fmt.Errorf("list dropbox folder %q: %w", root, err)
	}
	if res.HasMore {
		logger.Debug("dropbox: folder %q has more than %d entries, remainder not listed", root, arg.Limit)
	}

	var out []domain.RemoteFile
	for _, entry := range res.Entries {
		fm, ok := entry.(*files.FileMetadata)
		if !ok {
			// Flat listing only: sub-folders are not recursed into.
			continue
		}
		if rf, ok := c.toRemoteFile(fm); ok {
			out = append(out, rf)
		}
	}

	return out, nil
}

// toRemoteFile converts a Dropbox file entry to a descriptor, reporting
// whether the entry should be listed at all.
func (c *Connector) toRemoteFile(fm *files.FileMetadata) (domain.RemoteFile, bool) {
	suffix := connectors.SuffixFromName(fm.Name)
	if !c.registry.Supports(suffix) {
		logger.Debug("dropbox: file suffix not supported, skipping: %s", fm.Name)
		return domain.RemoteFile{}, false
	}

	return domain.RemoteFile{
		SourceID: fm.Id,
		Suffix:   suffix,
		Size:     int64(fm.Size),
		Handle: map[string]any{
			"name": fm.Name,
			"path": fm.PathDisplay,
			"rev":  fm.Rev,
		},
	}, true
}

// Fetch downloads the file's bytes into destDir.
func (c *Connector) Fetch(ctx context.Context, file domain.RemoteFile, destDir string) (domain.DownloadedFile, error) {
	if c.closed {
		return domain.DownloadedFile{}, domain.ErrConnectorClosed
	}
	if err := ctx.Err(); err != nil {
		return domain.DownloadedFile{}, err
	}

	logger.Debug("dropbox: downloading %s", file.SourceID)

	_, content, err := c.client.Download(files.NewDownloadArg(file.SourceID))
	if err != nil {
		return domain.DownloadedFile{}, fmt.Errorf("download dropbox file %s: %w", file.SourceID, err)
	}
	defer content.Close()

	return connectors.WriteTemp(c.sourcePath(file), file.Suffix, destDir, content)
}

// Close releases resources.
func (c *Connector) Close() error {
	c.closed = true
	return nil
}

// sourcePath is the provenance link recorded for a downloaded file: a
// Dropbox web URL derived from the entry's display path, falling back
// to the file id.
func (c *Connector) sourcePath(file domain.RemoteFile) string {
	return ResolveWebURL("dropbox://files/"+file.SourceID, map[string]any{
		"path":    file.Handle["path"],
		"file_id": file.SourceID,
	})
}

func tokenFromCredentials(credentials map[string]any) string {
	if token, ok := credentials["token"].(string); ok && token != "" {
		return token
	}
	if token, ok := credentials["access_token"].(string); ok && token != "" {
		return token
	}
	return ""
}
