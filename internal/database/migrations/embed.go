// Package migrations contains the versioned SQL scripts for the quote store.
// Files are applied in filename order, each exactly once.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
