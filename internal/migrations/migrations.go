// Package migrations embeds the schema so the binary does not depend on the
// working directory it is started from.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
