// Package domain defines the core business entities for docload.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RemoteFile: A reference to a remote file before download
//   - DownloadedFile: A file fetched into run-scoped temporary storage
//   - Document: A normalised text document produced by extraction
//   - SpaceGroup: A named collection of spaces for bulk access grants
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
