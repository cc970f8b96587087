// Package insights provides the AI advisory collaborator: it turns a
// snapshot of the transaction history into human-readable spending advice.
// The collaborator is purely advisory; its result or failure never touches
// ledger state.
package insights

import (
	"context"
)

// Client defines the interface for advisory text providers.
type Client interface {
	Advise(ctx context.Context, prompt string) (string, error)
}

// Config selects and configures a provider.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
}
