package postgres

import "embed"

// Migrations holds the goose SQL migrations for the catalog and vote tables.
//
//go:embed migrations/*.sql
var Migrations embed.FS

const MigrationsDir = "migrations"
