// Package cmd wires the command line interface: flags for the session
// settings, environment loading, and the chat command that opens the TUI.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/askweb/askweb/app/tui"
	"github.com/askweb/askweb/internal/agent"
	"github.com/askweb/askweb/internal/config"
	"github.com/askweb/askweb/providers/observability/slogobs"
)

var (
	flagModel         string
	flagTemperature   float64
	flagMaxIterations int
)

// Execute is the entry point for the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the cobra tree. Running the root command opens the
// interactive chat.
func NewRootCmd() *cobra.Command {
	defaults := config.Default()

	long := "askweb is an interactive agent that answers questions by searching the web\n" +
		"and reading pages, then composing an answer grounded in what it found."

	root := &cobra.Command{
		Use:           "askweb",
		Short:         "Ask questions and get answers researched from the web",
		Long:          long,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env file is fine; the variables may already
			// be exported.
			_ = godotenv.Load()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd)
		},
	}

	root.PersistentFlags().StringVar(&flagModel, "model", defaults.Model,
		"language model to use ("+strings.Join(config.SupportedModels, ", ")+")")
	root.PersistentFlags().Float64Var(&flagTemperature, "temperature", defaults.Temperature,
		"sampling temperature between 0.0 and 1.0")
	root.PersistentFlags().IntVar(&flagMaxIterations, "max-iterations", defaults.MaxIterations,
		"maximum search iterations per question (1-10)")

	root.AddCommand(newAskCmd())
	return root
}

// settingsFromFlags collects and validates the session settings.
func settingsFromFlags() (config.Settings, error) {
	settings := config.Settings{
		Model:         flagModel,
		Temperature:   flagTemperature,
		MaxIterations: flagMaxIterations,
	}
	if err := settings.Validate(); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

// newBuilder assembles the agent builder from the environment.
func newBuilder() (*agent.Builder, error) {
	creds, err := config.CredentialsFromEnv()
	if err != nil {
		return nil, err
	}

	provider := newProvider(creds)
	return agent.NewBuilder(provider, agent.WithTracer(slogobs.New())), nil
}

// runChat opens the interactive chat screen.
func runChat(cmd *cobra.Command) error {
	settings, err := settingsFromFlags()
	if err != nil {
		return err
	}
	builder, err := newBuilder()
	if err != nil {
		return err
	}
	return tui.Run(cmd.Context(), builder, settings)
}
