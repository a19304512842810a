package migrations

import "embed"

// Files stores forward-only SQL migrations for the state database.
//
//go:embed *.sql
var Files embed.FS
