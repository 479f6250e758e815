package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cpu-sched-sim/cpu-sched-sim/sim"
	"github.com/cpu-sched-sim/cpu-sched-sim/sim/backend"
	"github.com/cpu-sched-sim/cpu-sched-sim/sim/report"
)

func newCompareCmd() *cobra.Command {
	var (
		algorithms []string
		in         inputFlags
		out        outputFlags
		be         backendFlags
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run several algorithms over the same processes and compare their aggregates",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.validate(); err != nil {
				return err
			}
			input, err := in.resolve(cmd)
			if err != nil {
				return err
			}

			comparison, err := be.selector().Compare(cmd.Context(), algorithms, backend.Request{
				Processes: input.processes,
				Params:    input.params,
			})
			if err != nil {
				return err
			}

			w, closeFn, err := out.open(cmd)
			if err != nil {
				return err
			}
			if out.format == formatJSON {
				err = writeJSON(w, comparison)
			} else {
				if err = report.WriteComparison(w, comparison.Results, out.format == formatMarkdown); err == nil {
					_, err = fmt.Fprintf(w, "Backend: %s\n", comparison.Backend)
				}
			}
			if cerr := closeFn(); err == nil {
				err = cerr
			}
			return err
		},
	}

	cmd.Flags().StringSliceVar(&algorithms, "algorithms", sim.AlgorithmNames(), "Comma-separated algorithms to compare")
	in.register(cmd.Flags())
	out.register(cmd.Flags(), formatText)
	be.register(cmd)
	return cmd
}
