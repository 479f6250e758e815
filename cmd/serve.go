package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cpu-sched-sim/cpu-sched-sim/api"
)

func newServeCmd() *cobra.Command {
	var (
		addr string
		be   backendFlags
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulator over HTTP under /api/v1",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app := api.NewApp(api.NewSchedulerHandlerImpl(be.selector()))
			return api.Serve(ctx, app, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	be.register(cmd)
	return cmd
}
