// cmd/phonafind/main.go
//
// Entry point for the phonafind CLI. With no arguments it starts the
// interactive terminal session; see internal/cli for the one-shot and
// chart modes.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yourusername/phonafind/internal/cli"
)

func main() {
	flags := cli.NewFlags()
	rootCmd := cli.CreateRootCommand(flags)

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return cli.Run(cmd, args, flags)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
