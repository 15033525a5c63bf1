package memory

import (
	"context"

	"github.com/askweb/askweb/providers/ai"
)

// Provider is the conversation history store shared across chat turns.
type Provider interface {
	// AppendMessage stores message at the end of the history.
	AppendMessage(ctx context.Context, message *ai.Message)

	// AllMessages returns the full history in insertion order.
	AllMessages(ctx context.Context) ([]ai.Message, error)

	// LastMessages returns up to the last n messages.
	LastMessages(ctx context.Context, n int) ([]ai.Message, error)

	// Count returns the number of stored messages.
	Count(ctx context.Context) (int, error)

	// ClearMessages resets the history.
	ClearMessages(ctx context.Context)
}
