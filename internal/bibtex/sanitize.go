package bibtex

import "regexp"

var (
	upperRun = regexp.MustCompile(`[A-Z]+`)
	subTag   = regexp.MustCompile(`<sub>(.+?)</sub>`)
	supTag   = regexp.MustCompile(`<sup>(.+?)</sup>`)
)

// SanitizeTitle prepares a CSL title for BibTeX output. Maximal runs of
// uppercase letters are wrapped in braces so BibTeX styles preserve their
// capitalization, then HTML subscript/superscript tags are converted to
// LaTeX math markup. All tag pairs are replaced, non-greedily, so titles
// with several sub/sup spans come out intact.
//
// Uppercase wrapping runs first, on the original text only: the inserted
// LaTeX markup contains no uppercase letters, so the two passes cannot
// interfere.
func SanitizeTitle(title string) string {
	s := upperRun.ReplaceAllString(title, `{${0}}`)
	s = subTag.ReplaceAllString(s, `$$_{${1}}$$`)
	s = supTag.ReplaceAllString(s, `$$^{${1}}$$`)
	return s
}
