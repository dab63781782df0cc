// Package schemas embeds the JSON schemas used to validate wfcheck's own
// configuration, so validation works regardless of the working directory.
package schemas

import _ "embed"

// ConfigSchemaJSON is the JSON Schema for .wfcheck.yaml.
//
//go:embed config.schema.json
var ConfigSchemaJSON string
