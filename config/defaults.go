package config

import "github.com/awantoch/edgebridge/constants"

// Default file paths for edgebridge.
const (
	// DefaultConfigPath is where the CLI looks for a configuration file.
	DefaultConfigPath = constants.ConfigFileName
	// DefaultEnvFile is loaded into the environment by the CLI when present.
	DefaultEnvFile = constants.DefaultEnvFileName
)
