// Package duckduckgo provides the web-search tool backed by the DuckDuckGo
// Instant Answer API. It condenses abstracts, instant answers, definitions,
// and related topics into a single plain-text summary the model can read.
//
// The API is free and needs no key, which makes it the default search
// backend. Create the tool with [NewSearchTool] or call [Search] directly.
package duckduckgo
