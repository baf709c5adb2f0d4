package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pmbib/internal/bibtex"
	"pmbib/internal/pubmed"
)

var (
	getShortJournal bool
	getOutputFile   string
)

var getCmd = &cobra.Command{
	Use:   "get <pmid>",
	Short: "Fetch one PubMed reference as a BibTeX entry",
	Long: `Fetch one PubMed reference as a BibTeX entry.

The entry is printed to stdout, or appended to a .bib file with --output.

Examples:
  pmbib get 31452104
  pmbib get 31452104 --short-journal
  pmbib get 31452104 --output refs.bib`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().BoolVarP(&getShortJournal, "short-journal", "s", false, "Label the short journal name as the primary journal field")
	getCmd.Flags().StringVarP(&getOutputFile, "output", "o", "", "Append the entry to this .bib file instead of printing")
}

func runGet(cmd *cobra.Command, args []string) error {
	pmid := args[0]
	ctx := context.Background()

	client := newPubMedClient()
	rec, err := client.Get(ctx, pmid)
	if err != nil {
		if pubmed.IsNotFound(err) {
			exitWithError(ExitNotFound, "reference not found: %s", pmid)
		}
		exitWithError(ExitError, "fetching %s: %v", pmid, err)
	}

	entry, err := bibtex.Format(*rec, getShortJournal)
	if err != nil {
		exitWithError(ExitDataError, "formatting %s: %v", pmid, err)
	}

	if getOutputFile == "" {
		fmt.Print(entry)
		return nil
	}
	if err := appendEntry(getOutputFile, entry); err != nil {
		exitWithError(ExitError, "%v", err)
	}
	return nil
}

// appendEntry appends one rendered entry to a .bib file, creating it if
// needed.
func appendEntry(path, entry string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	if _, err := f.WriteString(entry); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
