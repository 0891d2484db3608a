// Package google provides shared infrastructure for the Google Drive
// connector:
//   - TokenSource construction from a pre-validated credential mapping
//   - Service factory for creating the Drive API client
//   - Error handling for common Google API errors (401, 403, 404, 429)
//   - Rate limiting to respect Google API quotas
//
// # Usage
//
//	ts, err := google.StaticTokenSource(credentials)
//	svc, err := google.NewDriveService(ctx, ts)
//
// Credential validation and refresh happen outside this package; a
// connector receives a token set that is already valid and fails a
// download rather than refreshing when it is not.
//
// # OAuth2 Scopes
//
// The Drive connector expects tokens carrying:
//   - https://www.googleapis.com/auth/drive.readonly (restricted)
//   - https://www.googleapis.com/auth/userinfo.email (non-sensitive)
package google
