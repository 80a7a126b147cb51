// Package migrations embeds the SQL schema files applied at startup.
package migrations

import "embed"

// FS holds the numbered *.up.sql files.
//
//go:embed *.up.sql
var FS embed.FS
