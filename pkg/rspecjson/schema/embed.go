// Package schema embeds the JSON Schema for RSpec result documents.
package schema

import "embed"

// FS contains the embedded schema files.
//
//go:embed *.schema.json
var FS embed.FS
