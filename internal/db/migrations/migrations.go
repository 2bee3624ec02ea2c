// Package migrations embeds the goose SQL migrations of the sheet schema.
// The SQL is written to run unchanged on PostgreSQL and SQLite.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
