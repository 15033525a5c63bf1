// Package react implements the reason-act agent loop: the model is shown
// the conversation history and the available tools, its tool calls are
// executed, and the results are fed back until it produces a final answer
// or the iteration budget runs out. On budget exhaustion the model is asked
// one last time with tool calling disabled so the user always gets an
// answer instead of an error.
package react
