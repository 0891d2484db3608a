package domain

// RemoteFile is a lightweight reference to a remote file before download.
// It is produced by a connector's listing call and is never persisted.
type RemoteFile struct {
	// SourceID is the connector-native identifier: an object-store path,
	// a drive file id, or a URI.
	SourceID string

	// Suffix is the resolved file extension including the leading dot
	// (e.g. ".pdf"). For cloud drives it is derived from the provider
	// MIME type or the entry name.
	Suffix string

	// Size is the remote-reported size in bytes. Informational only;
	// the authoritative size is measured from bytes actually written
	// during fetch.
	Size int64

	// Handle carries connector-specific fields needed to fetch the file
	// (export MIME type, web link, display name). Opaque to the core.
	Handle map[string]any
}

// DownloadedFile records a file fetched into run-scoped temporary storage.
// LocalPath is only valid within the lifetime of the enclosing temp scope.
type DownloadedFile struct {
	// SourcePath is the remote location the file came from: the source
	// path for object stores, the web link for cloud drives.
	SourcePath string

	// LocalPath is the absolute path of the downloaded copy.
	LocalPath string

	// IndexedOn is the unix timestamp of the download.
	IndexedOn int64

	// Size is the number of bytes actually written to LocalPath.
	Size int64
}

// DocumentListItem is the post-hoc per-file view of a pipeline run,
// available independently of extraction success.
type DocumentListItem struct {
	// Link is the source location of the file.
	Link string

	// IndexedOn is the unix timestamp the file was downloaded.
	IndexedOn int64

	// Size is the downloaded size in bytes.
	Size int64
}
