package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	base := Default()

	t.Run("accepts both supported models", func(t *testing.T) {
		for _, model := range SupportedModels {
			s := base
			s.Model = model
			require.NoError(t, s.Validate())
		}
	})

	t.Run("rejects unknown models", func(t *testing.T) {
		s := base
		s.Model = "gpt-3.5-turbo"
		err := s.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "unsupported model")
	})

	t.Run("accepts the temperature bounds", func(t *testing.T) {
		for _, temp := range []float64{MinTemperature, 0.5, MaxTemperature} {
			s := base
			s.Temperature = temp
			require.NoError(t, s.Validate())
		}
	})

	t.Run("rejects out-of-range temperatures", func(t *testing.T) {
		for _, temp := range []float64{-0.1, 1.1, 2.0} {
			s := base
			s.Temperature = temp
			require.Error(t, s.Validate())
		}
	})

	t.Run("accepts the iteration bounds", func(t *testing.T) {
		for _, n := range []int{MinIterations, MaxIterations} {
			s := base
			s.MaxIterations = n
			require.NoError(t, s.Validate())
		}
	})

	t.Run("rejects out-of-range iteration budgets", func(t *testing.T) {
		for _, n := range []int{0, -1, 11} {
			s := base
			s.MaxIterations = n
			require.Error(t, s.Validate())
		}
	})
}

func TestCredentialsFromEnv(t *testing.T) {
	t.Run("reads the key and base URL", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-test")
		t.Setenv("OPENAI_API_BASE_URL", "http://localhost:9999/v1")

		creds, err := CredentialsFromEnv()
		require.NoError(t, err)
		require.Equal(t, "sk-test", creds.APIKey)
		require.Equal(t, "http://localhost:9999/v1", creds.BaseURL)
	})

	t.Run("fails without an API key", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")

		_, err := CredentialsFromEnv()
		require.Error(t, err)
	})
}
