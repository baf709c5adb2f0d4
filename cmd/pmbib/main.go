// Package main provides the pmbib CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pmbib",
	Short: "Fetch PubMed references as BibTeX entries",
	Long: `pmbib retrieves article references from PubMed in BibTeX format.

It resolves PMIDs through the NCBI Literature Citation Exporter and renders
each record as an @article entry, either to stdout or appended to a .bib
file. A file of PMIDs can be converted in one batch.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
}
