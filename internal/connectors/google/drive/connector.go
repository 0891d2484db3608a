// Package drive implements the Google Drive connector ("drive A").
//
// Listing is flat: only the direct children of the selected folder are
// enumerated. Sub-folder recursion is not implemented; folder entries
// are filtered out of listings.
package drive

import (
	"context"
	"fmt"
	"io"
	"strings"

	gdrive "google.golang.org/api/drive/v3"

	"github.com/arkivio/docload/internal/connectors"
	"github.com/arkivio/docload/internal/connectors/google"
	"github.com/arkivio/docload/internal/core/domain"
	"github.com/arkivio/docload/internal/core/ports/driven"
	"github.com/arkivio/docload/internal/logger"
)

// MimeTypeFolder marks folder entries in Drive listings.
const MimeTypeFolder = "application/vnd.google-apps.folder"

// ExportMimePDF is the format Google Workspace natives are exported to.
const ExportMimePDF = "application/pdf"

// listFields restricts Files.List responses to the fields the connector
// consumes.
const listFields = "nextPageToken, files(id, name, mimeType, size, webViewLink, fullFileExtension)"

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// Connector enumerates and fetches files from Google Drive.
type Connector struct {
	svc      *gdrive.Service
	cfg      *Config
	registry driven.ExtractorRegistry
	limiter  *google.RateLimiter
	closed   bool
}

// New builds a Drive connector from a pre-validated credential mapping.
// Credential refresh is the credential store's job, not the connector's.
func New(ctx context.Context, credentials map[string]any, cfg *Config, registry driven.ExtractorRegistry) (*Connector, error) {
	ts, err := google.StaticTokenSource(credentials)
	if err != nil {
		return nil, err
	}

	svc, err := google.NewDriveService(ctx, ts)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	return NewWithService(svc, cfg, registry), nil
}

// NewWithService wraps an existing Drive service. Used by tests.
func NewWithService(svc *gdrive.Service, cfg *Config, registry driven.ExtractorRegistry) *Connector {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Connector{
		svc:      svc,
		cfg:      cfg,
		registry: registry,
		limiter:  google.NewRateLimiter(),
	}
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "gdrive"
}

// List enumerates the direct children of the configured folder.
// The path argument is unused: Drive addressing is by folder id, which
// comes from the connector configuration.
func (c *Connector) List(ctx context.Context, _ string) ([]domain.RemoteFile, error) {
	if c.closed {
		return nil, domain.ErrConnectorClosed
	}

	var files []domain.RemoteFile
	pageToken := ""
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		call := c.svc.Files.List().
			Q(fmt.Sprintf("'%s' in parents and trashed=false", c.cfg.folderID())).
			Fields(listFields).
			PageSize(c.cfg.PageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		page, err := call.Do()
		if err != nil {
			// A failed listing call is fatal for the whole invocation.
			return nil, fmt.Errorf("list drive folder %s: %w", c.cfg.folderID(), google.WrapError(err))
		}

		for _, f := range page.Files {
			if rf, ok := c.toRemoteFile(f); ok {
				files = append(files, rf)
			}
		}

		pageToken = page.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return files, nil
}

// toRemoteFile converts a Drive file entry to a descriptor, reporting
// whether the entry should be listed at all.
func (c *Connector) toRemoteFile(f *gdrive.File) (domain.RemoteFile, bool) {
	if f.MimeType == MimeTypeFolder {
		// Flat listing only: sub-folders are not recursed into.
		logger.Debug("gdrive: skipping folder entry: %s", f.Name)
		return domain.RemoteFile{}, false
	}

	suffix := connectors.SuffixForMIME(f.MimeType)
	if suffix == "" {
		suffix = connectors.SuffixFromName(f.Name)
	}
	if !c.registry.Supports(suffix) {
		logger.Debug("gdrive: file suffix not supported, skipping: %s (%s)", f.Name, f.MimeType)
		return domain.RemoteFile{}, false
	}

	return domain.RemoteFile{
		SourceID: f.Id,
		Suffix:   suffix,
		Size:     f.Size,
		Handle: map[string]any{
			"name":      f.Name,
			"mime_type": f.MimeType,
			"web_link":  f.WebViewLink,
		},
	}, true
}

// Fetch downloads the file's bytes into destDir. Google Workspace
// natives are exported to PDF; everything else is downloaded as is.
func (c *Connector) Fetch(ctx context.Context, file domain.RemoteFile, destDir string) (domain.DownloadedFile, error) {
	if c.closed {
		return domain.DownloadedFile{}, domain.ErrConnectorClosed
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return domain.DownloadedFile{}, err
	}

	mimeType, _ := file.Handle["mime_type"].(string)
	suffix := file.Suffix

	var body io.ReadCloser

	if strings.Contains(mimeType, "google-apps") {
		r, err := c.svc.Files.Export(file.SourceID, ExportMimePDF).Context(ctx).Download()
		if err != nil {
			return domain.DownloadedFile{}, fmt.Errorf("export drive file %s: %w", file.SourceID, google.WrapError(err))
		}
		body = r.Body
		suffix = ".pdf"
	} else {
		r, err := c.svc.Files.Get(file.SourceID).Context(ctx).Download()
		if err != nil {
			return domain.DownloadedFile{}, fmt.Errorf("download drive file %s: %w", file.SourceID, google.WrapError(err))
		}
		body = r.Body
	}
	defer body.Close()

	logger.Debug("gdrive: downloading %s", file.SourceID)

	return connectors.WriteTemp(c.sourcePath(file), suffix, destDir, body)
}

// Close releases resources.
func (c *Connector) Close() error {
	c.closed = true
	return nil
}

// sourcePath is the provenance link recorded for a downloaded file:
// the file's web view link when the listing carried one, otherwise a
// URL derived from the file id.
func (c *Connector) sourcePath(file domain.RemoteFile) string {
	if link, ok := file.Handle["web_link"].(string); ok && link != "" {
		return link
	}
	return ResolveWebURL("gdrive://files/"+file.SourceID, nil)
}
