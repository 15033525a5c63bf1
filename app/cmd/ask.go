package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/askweb/askweb/providers/memory/inmemory"
)

// newAskCmd runs a single question without opening the chat screen. Useful
// for scripting and for piping answers into other tools.
func newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a single question and print the answer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := settingsFromFlags()
			if err != nil {
				return err
			}
			builder, err := newBuilder()
			if err != nil {
				return err
			}
			webAgent, err := builder.Agent(settings)
			if err != nil {
				return err
			}

			question := strings.Join(args, " ")
			answer, err := webAgent.Run(cmd.Context(), inmemory.New(), question)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}
}
