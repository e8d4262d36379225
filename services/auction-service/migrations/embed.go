// Package migrations embeds the auction-service schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
