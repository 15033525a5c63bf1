// Package extract converts raw HTML markup into flattened plain text suitable
// for language-model consumption.
//
// The single entry point is [Text]. Non-content elements (scripts, styles,
// footers, navigation, asides) are dropped before extraction, every surviving
// word ends up on its own line, and the result is capped at [MaxTextLength]
// characters with [TruncationMarker] appended when the cap is hit.
//
// Extraction is a pure function with no I/O and no error path: malformed
// markup degrades to whatever the parser can recover, possibly an empty
// string.
package extract
