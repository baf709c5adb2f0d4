package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pmbib/internal/bibtex"
	"pmbib/internal/csl"
	"pmbib/internal/pubmed"
)

var convertShortJournal bool

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert a file of PMIDs to a BibTeX file",
	Long: `Convert a file of PMIDs to a BibTeX file.

The input file lists one PMID per line. Each PMID is resolved through the
Citation Exporter; entries that resolve are written to the output file, and
PMIDs that cannot be resolved or rendered are reported and counted without
stopping the batch.

Example:
  pmbib convert pmids.txt refs.bib`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().BoolVarP(&convertShortJournal, "short-journal", "s", false, "Label the short journal name as the primary journal field")
}

// fetcher resolves a PMID to a CSL record. Satisfied by *pubmed.Client;
// tests substitute a fake.
type fetcher interface {
	Get(ctx context.Context, pmid string) (*csl.Record, error)
}

// convertStats tracks batch conversion counts.
type convertStats struct {
	retrieved int
	failed    int
}

func runConvert(cmd *cobra.Command, args []string) error {
	pmids, err := readPMIDs(args[0])
	if err != nil {
		exitWithError(ExitError, "reading input: %v", err)
	}

	out, err := os.Create(args[1])
	if err != nil {
		exitWithError(ExitError, "creating output: %v", err)
	}

	client := newPubMedClient()
	stats := convertReferences(context.Background(), client, pmids, out, os.Stderr, convertShortJournal)

	if err := out.Close(); err != nil {
		exitWithError(ExitError, "writing output: %v", err)
	}

	fmt.Printf("%d reference%s retrieved.\n%d reference%s not found.\n",
		stats.retrieved, plural(stats.retrieved),
		stats.failed, plural(stats.failed))
	return nil
}

// convertReferences fetches and renders each PMID in turn, writing
// successful entries to out and per-item failures to report. A failed
// lookup or an unrenderable record counts as a failure and never stops
// the remaining items.
func convertReferences(ctx context.Context, f fetcher, pmids []string, out, report io.Writer, shortJournal bool) convertStats {
	var stats convertStats
	for _, pmid := range pmids {
		rec, err := f.Get(ctx, pmid)
		if err != nil {
			if pubmed.IsNotFound(err) {
				fmt.Fprintf(report, "PMID %s NOT FOUND\n", pmid)
			} else {
				fmt.Fprintf(report, "PMID %s: %v\n", pmid, err)
			}
			stats.failed++
			continue
		}

		entry, err := bibtex.Format(*rec, shortJournal)
		if err != nil {
			fmt.Fprintf(report, "PMID %s: %v\n", pmid, err)
			stats.failed++
			continue
		}

		fmt.Fprintln(out, entry)
		stats.retrieved++
	}
	return stats
}

// readPMIDs reads one PMID per line, skipping blank lines.
func readPMIDs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pmids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			pmids = append(pmids, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pmids, nil
}

// plural returns "s" for counts other than one.
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
