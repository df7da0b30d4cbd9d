package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/awantoch/edgebridge/constants"
	"github.com/awantoch/edgebridge/logger"
	"github.com/awantoch/edgebridge/vercel"
)

// newVercelCmd creates the 'vercel' subcommand.
func newVercelCmd() *cobra.Command {
	var (
		out  string
		opts vercel.Options
	)
	cmd := &cobra.Command{
		Use:   constants.CmdVercel,
		Short: constants.DescVercel,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if opts.BackendDir == "" {
				if cfg, err := loadConfig(); err == nil {
					opts.BackendDir = cfg.Adapter.BackendDir
				}
			}
			data, err := vercel.Render(opts)
			if err != nil {
				fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
				exit(constants.ExitUsage)
				return
			}
			if out == "" {
				logger.User("%s", string(data))
				return
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				fmt.Fprintf(os.Stderr, "write %s: %v\n", out, err)
				exit(constants.ExitUsage)
				return
			}
			logger.User("wrote %s", out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to this file instead of stdout (e.g. "+constants.VercelConfigFile+")")
	cmd.Flags().StringVar(&opts.Function, "function", constants.EntryFile, "Entry function file")
	cmd.Flags().StringVar(&opts.BackendDir, "backend-dir", "", "Backend directory to bundle (defaults to config)")
	cmd.Flags().StringVar(&opts.Runtime, "runtime", "", "Community runtime as name@x.y.z (omit for the built-in Go runtime)")
	cmd.Flags().IntVar(&opts.MaxDuration, "max-duration", constants.DefaultVercelMaxDuration, "Max invocation duration in seconds")
	return cmd
}
