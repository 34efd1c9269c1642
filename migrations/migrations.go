package migrations

import _ "embed"

// Schema is the idempotent database schema applied at startup.
//
//go:embed schema.sql
var Schema string
