// Package sqlite stores checked steps and helpfulness votes in one
// database file, guide.db, under the data directory (~/.lmsguide/data
// unless --data-dir says otherwise).
//
// The driver is modernc.org/sqlite, so the binary builds without cgo.
// The schema lives in the migrations package; Store applies any script
// newer than the version recorded in schema_migrations when it opens.
//
// A Store is safe for concurrent use. The connection runs in WAL mode so
// the TUI and a CLI invocation can share the file.
package sqlite
