// Package migrations embeds the schema so the binary can migrate without the source tree.
package migrations

import "embed"

// Postgres holds the numbered up/down scripts under postgres/.
//
//go:embed postgres/*.sql
var Postgres embed.FS

const PostgresDir = "postgres"
