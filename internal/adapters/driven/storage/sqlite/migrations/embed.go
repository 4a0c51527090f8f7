// Package migrations holds the guide database schema as numbered SQL
// scripts. Only the .up.sql files are applied; .down.sql files document
// how to roll a version back by hand.
package migrations

import "embed"

// FS is the compiled-in script set.
//
//go:embed *.sql
var FS embed.FS
