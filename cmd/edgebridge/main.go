// Command edgebridge checks, serves and packages the serverless entry adapter.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/awantoch/edgebridge/config"
	"github.com/awantoch/edgebridge/constants"
)

func main() {
	// Flag defaults read EDGEBRIDGE_CONFIG, so .env goes in before the command tree is built.
	_ = godotenv.Load(config.DefaultEnvFile)
	exit(execute(os.Args[1:]))
}

// execute runs the command tree. Subcommands that classify a load failure exit
// with their own code; anything cobra rejects is a usage error.
func execute(args []string) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", constants.CmdRoot, err)
		return constants.ExitUsage
	}
	return constants.ExitOK
}
