package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "propertyhub",
		Short:         "Property listings server and catalog tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&envFile, "env", "", "path to a .env file (default ./.env)")

	root.AddCommand(newServeCmd(&envFile), newSearchCmd(), newSeedCmd(&envFile))

	return root
}
