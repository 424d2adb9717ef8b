package migrations

import "embed"

// FS contains embedded SQLite migrations for fireworks storage.
//
//go:embed *.sql
var FS embed.FS
