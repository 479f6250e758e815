package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cpu-sched-sim/cpu-sched-sim/sim"
)

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the registered scheduling algorithms",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range sim.AlgorithmNames() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", name, sim.AlgorithmLabel(name)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
