package bibtex

import "errors"

// Errors returned by Format for records that cannot yield a valid entry.
// Every other missing field is tolerated and rendered as an empty value.
var (
	// ErrMissingYear indicates the record carries no publication year in
	// either its issued or epub-date fields.
	ErrMissingYear = errors.New("record has no publication year")

	// ErrInvalidAuthor indicates the first author has neither a family
	// nor a given name, so no entry key can be derived.
	ErrInvalidAuthor = errors.New("first author has no usable name")
)
