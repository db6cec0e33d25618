package main

import (
	"os"

	"github.com/fennecsec/gcpassets/cli"
	"github.com/fennecsec/gcpassets/globals"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:     "gcpassets",
		Short:   "Inspect GCP resource hierarchies and enumerate typed resources",
		Version: globals.GCPASSETS_VERSION,
	}
)

func main() {
	rootCmd.AddCommand(cli.HierarchyCommand, cli.ListResourcesCommand)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
