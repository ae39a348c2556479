// Package sqlite stores map documents in SQLite database files.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. Each database file holds exactly one
// map document; saving replaces the file's contents inside a single transaction.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
// Applied versions are recorded in schema_migrations.
//
// # Ordering
//
// Every table carries a seq column so points, borders, parts and countries
// load in the order they were saved.
package sqlite
