// Package migrations carries the database schema as embedded golang-migrate files.
package migrations

import "embed"

// FS holds the *.up.sql / *.down.sql pairs.
//
//go:embed *.sql
var FS embed.FS
