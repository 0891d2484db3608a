// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the pipeline to function:
//
//   - Connector: Enumerates and fetches remote files from a source
//   - Extractor: Converts one downloaded file into text documents
//   - ExtractorRegistry: Resolves an extractor for a file suffix
//   - SpaceGroupStore: Space group persistence
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the pipeline degrades gracefully:
//
//   - Transcriber: Audio/video transcription. Without it, media files
//     yield metadata-only documents.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or extractor package
package driven
