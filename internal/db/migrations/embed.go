// filepath: internal/db/migrations/embed.go
package migrations

import "embed"

// Dir is the directory goose reads from inside FS.
const Dir = "."

// FS holds the cleaning-request schema migrations.
//
//go:embed *.sql
var FS embed.FS
