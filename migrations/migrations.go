// Package migrations embeds the goose SQL migrations.
package migrations

import "embed"

// FS holds the SQL migration files, applied with goose.SetBaseFS.
//
//go:embed *.sql
var FS embed.FS
