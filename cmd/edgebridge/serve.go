package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/awantoch/edgebridge/adapter"
	"github.com/awantoch/edgebridge/constants"
	edgehttp "github.com/awantoch/edgebridge/http"
	"github.com/awantoch/edgebridge/logger"
)

// newServeCmd creates the 'serve' subcommand.
func newServeCmd() *cobra.Command {
	var (
		port        int
		metricsAddr string
	)
	cmd := &cobra.Command{
		Use:   constants.CmdServe,
		Short: constants.DescServe,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				fmt.Fprintf(os.Stderr, constants.MsgLoadFailed+"\n", adapter.FailureConfig, err)
				exit(adapter.FailureConfig.ExitCode())
				return nil
			}
			if port != 0 {
				cfg.HTTP.Port = port
			}
			if metricsAddr != "" {
				cfg.Metrics.Addr = metricsAddr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, h, err := adapter.Bootstrap(ctx, cfg)
			if err != nil {
				failure := adapter.Classify(err)
				fmt.Fprintf(os.Stderr, constants.MsgLoadFailed+"\n", failure, err)
				exit(failure.ExitCode())
				return nil
			}
			logger.User(constants.MsgServing, a.App(), edgehttp.Addr(cfg))
			if cfg.Metrics.Addr != "" {
				logger.User(constants.MsgMetrics, cfg.Metrics.Addr, constants.PathMetrics)
			}
			return edgehttp.StartServer(ctx, cfg, h)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (overrides config)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
	return cmd
}
