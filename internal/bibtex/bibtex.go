// Package bibtex renders CSL citation records as BibTeX entries.
package bibtex

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"pmbib/internal/csl"
)

// Format renders a record as a single @article entry.
//
// The short-journal preference controls which of the two journal lines
// carries the plain "journal" label; the long and short names themselves
// always appear in the same order. Missing fields render as empty values,
// except the publication year (ErrMissingYear) and an entry key that
// cannot be derived from the first author (ErrInvalidAuthor).
func Format(rec csl.Record, shortJournal bool) (string, error) {
	year, ok := rec.Year()
	if !ok {
		return "", ErrMissingYear
	}

	key, err := entryKey(rec.Authors, year)
	if err != nil {
		return "", err
	}

	longLabel, shortLabel := "journal", "journal-short"
	if shortJournal {
		longLabel, shortLabel = "journal-long", "journal"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@article{%s,\n", key)
	fmt.Fprintf(&b, "  title = {%s},\n", SanitizeTitle(rec.Title))
	fmt.Fprintf(&b, "  author = {%s},\n", formatAuthors(rec.Authors))
	fmt.Fprintf(&b, "  %s = {%s},\n", longLabel, rec.ContainerTitle)
	fmt.Fprintf(&b, "  %s = {%s},\n", shortLabel, rec.ContainerTitleShort)
	fmt.Fprintf(&b, "  volume = {%s},\n", rec.Volume)
	fmt.Fprintf(&b, "  pages = {%s},\n", rec.Page)
	fmt.Fprintf(&b, "  year = {%d},\n", year)
	fmt.Fprintf(&b, "  doi = {%s}\n", rec.DOI)
	b.WriteString("}\n")

	return b.String(), nil
}

// formatAuthors renders the author field: "Family, Given" per author,
// joined with " and ". Authors missing one name part contribute the other
// alone; authors missing both contribute nothing.
func formatAuthors(authors []csl.Name) string {
	var rendered []string
	for _, a := range authors {
		switch {
		case a.Family != "" && a.Given != "":
			rendered = append(rendered, a.Family+", "+a.Given)
		case a.Family != "":
			rendered = append(rendered, a.Family)
		case a.Given != "":
			rendered = append(rendered, a.Given)
		}
	}
	return strings.Join(rendered, " and ")
}

// entryKey derives the citation key: the first author's title-cased family
// name (given name as-is when there is no family name) followed by the year,
// e.g. "Smith2020". An empty author list falls back to "Unknown".
func entryKey(authors []csl.Name, year int) (string, error) {
	prefix := "Unknown"
	if len(authors) > 0 {
		first := authors[0]
		switch {
		case first.Family != "":
			prefix = sanitizeForKey(cases.Title(language.Und).String(first.Family))
		case first.Given != "":
			prefix = first.Given
		default:
			return "", ErrInvalidAuthor
		}
	}
	return fmt.Sprintf("%s%d", prefix, year), nil
}

// sanitizeForKey removes non-alphanumeric characters.
func sanitizeForKey(s string) string {
	var result strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}
