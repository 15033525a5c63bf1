// Package parse converts language-model output strings into typed Go values.
//
// Models frequently emit slightly broken JSON for tool arguments: single
// quotes, unquoted keys, trailing commas. [ParseStringAs] first tries a
// strict decode and then falls back to repairing the payload with the
// jsonrepair library before giving up. Primitive target types are parsed
// directly without requiring JSON quoting.
package parse
