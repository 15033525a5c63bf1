// Package jsonschema derives JSON Schema documents from Go types via
// reflection. The schemas describe tool inputs and outputs to language
// models, which select and invoke tools based on them.
//
// [GenerateJSONSchema] walks a struct type, honouring `json` tags for
// property names and `jsonschema` tags for descriptions, enums, bounds, and
// required markers:
//
//	type Input struct {
//		URL   string `json:"url" jsonschema:"description=Page URL,required"`
//		Limit int    `json:"limit,omitempty" jsonschema:"minimum=1,maximum=300"`
//	}
package jsonschema
