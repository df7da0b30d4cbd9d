package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/awantoch/edgebridge/adapter"
	"github.com/awantoch/edgebridge/constants"
	"github.com/awantoch/edgebridge/layout"
	"github.com/awantoch/edgebridge/logger"
)

// newCheckCmd creates the 'check' subcommand.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   constants.CmdCheck,
		Short: constants.DescCheck,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := loadConfig()
			if err != nil {
				fmt.Fprintf(os.Stderr, constants.MsgLoadFailed+"\n", adapter.FailureConfig, err)
				exit(adapter.FailureConfig.ExitCode())
				return
			}
			a, _, err := adapter.Bootstrap(context.Background(), cfg)
			if err != nil {
				failure := adapter.Classify(err)
				fmt.Fprintf(os.Stderr, constants.MsgLoadFailed+"\n", failure, err)
				exit(failure.ExitCode())
				return
			}
			printLayout(a.Layout())
			logger.User(constants.MsgLoadOK, constants.EntryFile+"#"+constants.ExportName, a.App())
		},
	}
}

func printLayout(l layout.Layout) {
	logger.User(constants.MsgLayoutAdapter, l.AdapterDir)
	logger.User(constants.MsgLayoutBackend, l.BackendDir)
}
