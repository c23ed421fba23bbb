// Package db embeds the SQL migration files into the binary so that
// "salesctl db migrate" works without the source tree present.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
