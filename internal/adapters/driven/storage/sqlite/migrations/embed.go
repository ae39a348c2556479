// Package migrations holds the schema of a .db map document.
// Files are applied in name order; each NNN_name.up.sql is one version.
package migrations

import "embed"

// FS contains the migration files.
//
//go:embed *.sql
var FS embed.FS
