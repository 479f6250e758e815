package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cpu-sched-sim/cpu-sched-sim/sim/workload"
)

func newGenerateCmd() *cobra.Command {
	spec := workload.DefaultGeneratorSpec()
	var output string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random process list (YAML on stdout, or a .csv/.yaml/.json file)",
		RunE: func(cmd *cobra.Command, args []string) error {
			procs, err := workload.Generate(spec)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				return workload.WriteYAML(cmd.OutOrStdout(), procs)
			}
			if err := workload.SaveProcesses(output, procs); err != nil {
				return err
			}
			logrus.Infof("Wrote %d processes to %s", len(procs), output)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&spec.Count, "count", "n", spec.Count, "Number of processes")
	fs.Int64Var(&spec.Seed, "seed", spec.Seed, "Random seed")
	fs.Int64Var(&spec.Arrival.Min, "arrival-min", spec.Arrival.Min, "Minimum arrival time")
	fs.Int64Var(&spec.Arrival.Max, "arrival-max", spec.Arrival.Max, "Maximum arrival time")
	fs.Int64Var(&spec.Burst.Min, "burst-min", spec.Burst.Min, "Minimum burst time")
	fs.Int64Var(&spec.Burst.Max, "burst-max", spec.Burst.Max, "Maximum burst time")
	fs.Int64Var(&spec.Priority.Min, "priority-min", spec.Priority.Min, "Minimum priority")
	fs.Int64Var(&spec.Priority.Max, "priority-max", spec.Priority.Max, "Maximum priority")
	fs.StringVarP(&output, "output", "o", "", "Write to this file; format follows the extension")
	return cmd
}
