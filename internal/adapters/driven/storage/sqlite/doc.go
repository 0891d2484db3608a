// Package sqlite provides a SQLite-based implementation of driven port interfaces.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It implements the metadata store
// interfaces through a single database connection:
//
//   - SpaceGroupStore: space group and membership persistence
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory, applied in order on startup.
//
// # Data Location
//
// By default, the database is stored at ~/.docload/data/metadata.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
