// Package tool provides the foundational types for defining and executing
// tools that a language model can invoke while answering a question.
//
// A tool binds a typed Go function to a name, a natural-language description
// the model uses for capability discovery, and JSON schemas auto-derived from
// the function's input and output types. The description tells the model WHEN
// to call the tool; the schema tells it HOW, and incoming arguments are
// validated against the input type at the call boundary rather than trusted
// implicitly.
//
// Create tools with [NewTool]; register them in a [Catalog], the thread-safe
// name-to-tool registry the agent runtime dispatches through.
package tool
