package insights

import (
	"fmt"
	"strings"
)

// NewClient creates an advisory client based on the provided configuration.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return newOpenAIClient(cfg)
	case "anthropic", "":
		return newAnthropicClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported insights provider: %s", cfg.Provider)
	}
}
