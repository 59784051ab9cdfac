// Package migrations ships the SQL schema for the decision journal.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
