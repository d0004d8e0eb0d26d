package migrations

import "embed"

// FS содержит SQL миграции для каждого поддерживаемого диалекта (postgres, sqlite).
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
