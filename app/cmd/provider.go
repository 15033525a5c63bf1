package cmd

import (
	"github.com/askweb/askweb/internal/config"
	"github.com/askweb/askweb/providers/ai"
	"github.com/askweb/askweb/providers/ai/openai"
)

// newProvider builds the OpenAI provider from the given credentials.
func newProvider(creds config.Credentials) ai.Provider {
	provider := openai.NewOpenAIProvider().WithAPIKey(creds.APIKey)
	if creds.BaseURL != "" {
		provider = provider.WithBaseURL(creds.BaseURL)
	}
	return provider
}
