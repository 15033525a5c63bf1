package observability

// Semantic conventions for span attribute and event names, so the same
// concept is spelled the same way across the codebase.

// --- LLM provider attributes ---

const (
	// AttrLLMProvider is the name of the LLM provider (e.g. "openai")
	AttrLLMProvider = "llm.provider"

	// AttrLLMModel is the model identifier (e.g. "gpt-4o")
	AttrLLMModel = "llm.model"

	// AttrLLMEndpoint is the API endpoint URL
	AttrLLMEndpoint = "llm.endpoint"

	// AttrLLMFinishReason is the reason the generation finished
	AttrLLMFinishReason = "llm.finish_reason"

	// AttrLLMTokensPrompt is the number of prompt tokens
	AttrLLMTokensPrompt = "llm.tokens.prompt" // #nosec G101 -- Not a credential, token refers to LLM tokens

	// AttrLLMTokensCompletion is the number of completion tokens
	AttrLLMTokensCompletion = "llm.tokens.completion" // #nosec G101 -- Not a credential, token refers to LLM tokens

	// AttrLLMTokensTotal is the total number of tokens
	AttrLLMTokensTotal = "llm.tokens.total" // #nosec G101 -- Not a credential, token refers to LLM tokens
)

// --- Tool execution attributes ---

const (
	// AttrToolName is the name of the tool being executed
	AttrToolName = "tool.name"

	// AttrToolInput is the serialized tool input
	AttrToolInput = "tool.input"

	// AttrToolOutput is the serialized tool output
	AttrToolOutput = "tool.output"

	// AttrToolDuration is the tool execution duration
	AttrToolDuration = "tool.duration"

	// AttrToolError is the error message if tool execution failed
	AttrToolError = "tool.error"
)

// --- Agent loop attributes ---

const (
	// AttrAgentIteration is the current reason-act iteration, starting at 1
	AttrAgentIteration = "agent.iteration"

	// AttrAgentMaxIterations is the configured iteration budget
	AttrAgentMaxIterations = "agent.max_iterations"

	// AttrMemoryTotalMessages is the running size of the conversation history
	AttrMemoryTotalMessages = "memory.total_messages"

	// AttrMemoryMessageRole is the role of a message being appended
	AttrMemoryMessageRole = "memory.message.role"

	// AttrMemoryMessageLength is the content length of a message being appended
	AttrMemoryMessageLength = "memory.message.length"
)

// --- HTTP attributes ---

const (
	// AttrHTTPMethod is the request method
	AttrHTTPMethod = "http.method"

	// AttrHTTPURL is the request URL
	AttrHTTPURL = "http.url"

	// AttrHTTPStatusCode is the response status code
	AttrHTTPStatusCode = "http.status_code"

	// AttrHTTPRequestBodySize is the request body size in bytes
	AttrHTTPRequestBodySize = "http.request.body_size"

	// AttrHTTPResponseBodySize is the response body size in bytes
	AttrHTTPResponseBodySize = "http.response.body_size"
)

// --- Event names ---

const (
	// EventToolExecutionStart marks the beginning of a tool execution
	EventToolExecutionStart = "tool.execution.start"

	// EventToolExecutionEnd marks the end of a tool execution
	EventToolExecutionEnd = "tool.execution.end"

	// EventAgentForcedAnswer marks a final answer forced by budget exhaustion
	EventAgentForcedAnswer = "agent.forced_answer"

	// EventMemoryAppend marks a message appended to conversation memory
	EventMemoryAppend = "memory.append"

	// EventMemoryClear marks the conversation memory being reset
	EventMemoryClear = "memory.clear"
)
