// Package cost defines the per-call cost and quality metadata that tools
// advertise alongside their schemas.
//
// [ToolMetrics] annotates a tool with its monetary cost, historical accuracy,
// and typical latency. The values are surfaced through observability spans so
// operators can see what each agent run spent and where the time went.
package cost
