// Package campaigner holds assets shared by every binary of the module.
package campaigner

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
