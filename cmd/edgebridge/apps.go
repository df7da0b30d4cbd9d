package main

import (
	"github.com/spf13/cobra"

	"github.com/awantoch/edgebridge/constants"
	"github.com/awantoch/edgebridge/logger"
	"github.com/awantoch/edgebridge/registry"
)

// newAppsCmd creates the 'apps' subcommand.
func newAppsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   constants.CmdApps,
		Short: constants.DescApps,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			names := registry.Names()
			if len(names) == 0 {
				logger.User(constants.MsgNoApps)
				return
			}
			for _, name := range names {
				logger.User("%s", name)
			}
		},
	}
}
