// Package migrations embeds the profile service schema migrations.
package migrations

import "embed"

//go:embed *.up.sql
var FS embed.FS
