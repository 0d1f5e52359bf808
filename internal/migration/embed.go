package migration

import "embed"

const migrationsDir = "migrations"

//go:embed migrations/*.sql
var embeddedMigrations embed.FS
