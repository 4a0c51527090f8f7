package sqlite

import "errors"

var (
	// ErrBadMigrationName indicates a migration file not named NNN_label.up.sql.
	ErrBadMigrationName = errors.New("sqlite: bad migration file name")

	// ErrDuplicateMigration indicates two migration files share a version.
	ErrDuplicateMigration = errors.New("sqlite: duplicate migration version")
)
