package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Each call returns fresh commands with
// their own flag state.
func NewRootCmd() *cobra.Command {
	var logLevel string // Log verbosity level

	rootCmd := &cobra.Command{
		Use:           "cpu-sched-sim",
		Short:         "Deterministic CPU scheduling simulator (FCFS, SJF, Priority-RR, MLFQ)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			logrus.SetLevel(level)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(
		newRunCmd(),
		newCompareCmd(),
		newGenerateCmd(),
		newServeCmd(),
		newAlgorithmsCmd(),
	)
	return rootCmd
}

// Execute runs the CLI root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
