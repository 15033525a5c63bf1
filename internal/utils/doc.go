// Package utils provides shared low-level helpers used throughout the askweb
// internals: a JSON POST round-trip helper for provider APIs, body-close
// logging, pointer conversion, and string truncation for log previews.
//
// Key entry points: [DoPostSync] for synchronous JSON round-trips,
// [CloseWithLog] for deferred closes, [Ptr] for converting values to
// pointers, and [TruncateString] for bounded log output.
package utils
