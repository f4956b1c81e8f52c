// Package intake holds assets shared by the intake binaries, such as the
// embedded database migrations.
package intake

import "embed"

// Migrations contains the goose SQL migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
