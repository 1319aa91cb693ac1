// Package migrations embeds the goose SQL migrations so the binary carries
// its own schema. They run before the server starts listening: request
// handlers never have to branch on schema shape.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
