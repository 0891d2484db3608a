// Package connectors provides implementations of the Connector interface
// for various document sources. Each connector knows how to enumerate and
// fetch files from a specific source type (object store, Google Drive,
// Dropbox).
//
// The package root holds the provider MIME type to file extension table
// shared by the cloud drive connectors.
package connectors
