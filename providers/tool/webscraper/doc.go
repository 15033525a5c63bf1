// Package webscraper provides the page-fetching tool for the agent. It
// downloads a web page, strips non-content elements, and hands back cleaned
// plain text (or Markdown on request) capped to a model-friendly length.
//
// Create the tool with [NewWebScraperTool] or call [Scrape] for the typed
// path. [Run] wraps Scrape with the free-form success and error payloads the
// agent runtime consumes; it never returns an error.
package webscraper
