// Package config holds the runtime settings for a chat session: which model
// answers, how creative it is allowed to be, and how many reason-act
// iterations a single question may spend.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Supported model identifiers.
const (
	ModelGPT4o     = "gpt-4o"
	ModelGPT4oMini = "gpt-4o-mini"
)

// DefaultModel is used when no model is selected.
const DefaultModel = ModelGPT4o

// Iteration budget bounds.
const (
	MinIterations     = 1
	MaxIterations     = 10
	DefaultIterations = 5
)

// Temperature bounds.
const (
	MinTemperature     = 0.0
	MaxTemperature     = 1.0
	DefaultTemperature = 0.5
)

// SupportedModels lists the model identifiers a session may use.
var SupportedModels = []string{ModelGPT4o, ModelGPT4oMini}

// Settings is the per-session configuration tuple. Two sessions with equal
// Settings behave identically, which is what makes agent memoization safe.
type Settings struct {
	// Model is the model identifier, one of [SupportedModels].
	Model string

	// Temperature is the sampling temperature, within
	// [MinTemperature, MaxTemperature].
	Temperature float64

	// MaxIterations is the reason-act budget per question, within
	// [MinIterations, MaxIterations].
	MaxIterations int
}

// Default returns the settings used when the user changes nothing.
func Default() Settings {
	return Settings{
		Model:         DefaultModel,
		Temperature:   DefaultTemperature,
		MaxIterations: DefaultIterations,
	}
}

// Validate checks every field against its allowed range. It reports the
// first violation found.
func (s Settings) Validate() error {
	if !IsSupportedModel(s.Model) {
		return fmt.Errorf("unsupported model %q, expected one of: %s", s.Model, strings.Join(SupportedModels, ", "))
	}
	if s.Temperature < MinTemperature || s.Temperature > MaxTemperature {
		return fmt.Errorf("temperature %.2f out of range [%.1f, %.1f]", s.Temperature, MinTemperature, MaxTemperature)
	}
	if s.MaxIterations < MinIterations || s.MaxIterations > MaxIterations {
		return fmt.Errorf("max iterations %d out of range [%d, %d]", s.MaxIterations, MinIterations, MaxIterations)
	}
	return nil
}

// IsSupportedModel reports whether model is one of [SupportedModels].
func IsSupportedModel(model string) bool {
	for _, supported := range SupportedModels {
		if model == supported {
			return true
		}
	}
	return false
}

// Credentials holds the provider access configuration read from the
// environment.
type Credentials struct {
	// APIKey is the OpenAI API key (OPENAI_API_KEY).
	APIKey string

	// BaseURL optionally overrides the API endpoint (OPENAI_API_BASE_URL).
	BaseURL string
}

// CredentialsFromEnv reads provider credentials from the environment.
// It fails when no API key is set, since nothing works without one.
func CredentialsFromEnv() (Credentials, error) {
	creds := Credentials{
		APIKey:  os.Getenv("OPENAI_API_KEY"),
		BaseURL: os.Getenv("OPENAI_API_BASE_URL"),
	}
	if creds.APIKey == "" {
		return Credentials{}, fmt.Errorf("OPENAI_API_KEY is not set")
	}
	return creds, nil
}
