package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/awantoch/edgebridge/config"
	"github.com/awantoch/edgebridge/constants"
	"github.com/awantoch/edgebridge/logger"

	// The backend registers its application when imported.
	_ "github.com/awantoch/edgebridge/backend"
)

var (
	exit       = os.Exit
	configPath string
	envFile    string
	debug      bool
)

// NewRootCmd creates the root 'edgebridge' command with persistent flags and subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           constants.CmdRoot,
		Short:         constants.DescRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath(), "Path to edgebridge config (JSON or YAML)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "Path to a .env file loaded before the config")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logs")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logger.SetOutput(cmd.ErrOrStderr())
		// Load environment variables from .env file, if present
		if envFile != "" {
			_ = godotenv.Load(envFile)
		}
		if debug {
			_ = logger.SetLevel(constants.LogLevelDebug)
		}
	}

	rootCmd.AddCommand(
		newCheckCmd(),
		newServeCmd(),
		newAppsCmd(),
		newVercelCmd(),
	)
	return rootCmd
}

func defaultConfigPath() string {
	if p := os.Getenv(constants.EnvConfigPath); p != "" {
		return p
	}
	return config.DefaultConfigPath
}

// loadConfig reads the effective configuration; --debug wins over the configured level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if debug {
		cfg.Log.Level = constants.LogLevelDebug
	}
	return cfg, nil
}
