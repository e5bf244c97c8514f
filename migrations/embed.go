// Package migrations embeds the numbered SQL files that build and seed the
// catalog database.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
