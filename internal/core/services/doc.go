// Package services implements the driving port interfaces.
// Services contain the ingestion pipeline logic and orchestrate
// calls to driven ports (connectors, extractors, stores).
//
// Services are pure Go with no CGO or external dependencies.
package services
