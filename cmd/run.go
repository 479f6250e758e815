package cmd

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cpu-sched-sim/cpu-sched-sim/sim"
	"github.com/cpu-sched-sim/cpu-sched-sim/sim/backend"
	"github.com/cpu-sched-sim/cpu-sched-sim/sim/report"
)

// backendFlags choose an optional remote backend.
type backendFlags struct {
	url     string        // Remote cpu-sched-sim server
	timeout time.Duration // Per-call remote timeout
}

func (f *backendFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.url, "backend-url", "", "Prefer a remote cpu-sched-sim server (falls back to local)")
	cmd.Flags().DurationVar(&f.timeout, "backend-timeout", backend.DefaultRemoteTimeout, "Timeout for each remote call")
}

func (f *backendFlags) selector() *backend.Selector {
	if f.url == "" {
		return backend.NewSelector(nil)
	}
	return backend.NewSelector(backend.NewRemote(f.url, f.timeout))
}

func newRunCmd() *cobra.Command {
	var (
		algorithm string
		in        inputFlags
		out       outputFlags
		be        backendFlags
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one scheduling algorithm over a process list",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.validate(); err != nil {
				return err
			}
			input, err := in.resolve(cmd)
			if err != nil {
				return err
			}
			// the scenario's algorithm applies unless --algorithm was given
			if input.algorithm != "" && !cmd.Flags().Changed("algorithm") {
				algorithm = input.algorithm
			}

			logrus.Infof("Starting %s simulation with %d processes, params=%+v", algorithm, len(input.processes), input.params)
			startTime := time.Now()

			resp, err := be.selector().Run(cmd.Context(), backend.Request{
				Algorithm: algorithm,
				Processes: input.processes,
				Params:    input.params,
			})
			if err != nil {
				return err
			}
			logrus.Infof("Simulation complete on %s backend in %s", resp.Backend, time.Since(startTime))

			w, closeFn, err := out.open(cmd)
			if err != nil {
				return err
			}
			switch out.format {
			case formatJSON:
				err = writeJSON(w, resp)
			case formatMarkdown:
				err = report.WriteMarkdown(w, resp.Result)
			default:
				if err = report.WriteText(w, resp.Result); err == nil {
					_, err = fmt.Fprintf(w, "Backend: %s\n", resp.Backend)
				}
			}
			if cerr := closeFn(); err == nil {
				err = cerr
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", sim.AlgorithmPriorityRR, "Algorithm (fcfs, sjf, priority_rr, mlfq)")
	in.register(cmd.Flags())
	out.register(cmd.Flags(), formatText)
	be.register(cmd)
	return cmd
}
