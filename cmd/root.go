package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"sockplot/internal/logging"
)

const Version = "1.0.0"

// Execute runs the CLI. A .env file, when present, may provide
// SOCKPLOT_OUTPUT_DIR.
func Execute() error {
	godotenv.Load(".env")
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:          "sockplot",
		Short:        "Socket benchmark chart generator",
		Long:         "Renders the recorded two-copy, one-copy, and zero-copy socket benchmark results into PNG charts",
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logLevel != "" {
				if err := logging.SetLogLevel(logLevel); err != nil {
					return fmt.Errorf("invalid log level: %w", err)
				}
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newDescribeCmd())

	return rootCmd
}
