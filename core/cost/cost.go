package cost

import "fmt"

// ToolMetrics describes the cost and quality profile of a single tool
// execution. All fields are optional; zero values mean "unknown" and are
// omitted from observability output.
type ToolMetrics struct {
	// Amount is the monetary cost of one execution of the tool.
	Amount float64 `json:"amount"`

	// Currency is the currency or unit for Amount (e.g. "USD", "credits").
	Currency string `json:"currency,omitempty"`

	// CostDescription adds context about how the cost accrues
	// (e.g. "per API call", "local HTTP request").
	CostDescription string `json:"cost_description,omitempty"`

	// Accuracy is the historical reliability score in [0.0, 1.0].
	Accuracy float64 `json:"accuracy,omitempty"`

	// AverageDurationInMillis is the typical wall-clock execution time.
	AverageDurationInMillis int64 `json:"average_duration_ms,omitempty"`
}

// String returns a compact human-readable summary of the metrics.
func (tm ToolMetrics) String() string {
	currency := tm.Currency
	if currency == "" {
		currency = "USD"
	}

	out := fmt.Sprintf("%.6f %s", tm.Amount, currency)
	if tm.CostDescription != "" {
		out = fmt.Sprintf("%s (%s)", out, tm.CostDescription)
	}
	if tm.Accuracy > 0 {
		out = fmt.Sprintf("%s, accuracy %.0f%%", out, tm.Accuracy*100)
	}
	if tm.AverageDurationInMillis > 0 {
		out = fmt.Sprintf("%s, ~%dms", out, tm.AverageDurationInMillis)
	}
	return out
}
