// Package csl defines the subset of the Citation Style Language JSON
// data model returned by the NCBI Literature Citation Exporter.
//
// See https://github.com/citation-style-language/schema for the full schema;
// only the fields needed to render an article entry are mapped here.
package csl

// Record is one CSL-JSON citation record.
type Record struct {
	Title               string `json:"title"`
	Authors             []Name `json:"author"`
	ContainerTitle      string `json:"container-title"`
	ContainerTitleShort string `json:"container-title-short"`
	Volume              string `json:"volume"`
	Page                string `json:"page"`
	DOI                 string `json:"DOI"`
	Issued              *Date  `json:"issued"`
	EpubDate            *Date  `json:"epub-date"`
}

// Name is one contributor. Either part may be absent.
type Name struct {
	Family string `json:"family"`
	Given  string `json:"given"`
}

// Date is a CSL date: date-parts is a sequence of [year, month, day]
// tuples, each part after the year optional.
type Date struct {
	DateParts [][]int `json:"date-parts"`
}

// year returns the year component, or false if the date carries none.
func (d *Date) year() (int, bool) {
	if d == nil || len(d.DateParts) == 0 || len(d.DateParts[0]) == 0 {
		return 0, false
	}
	return d.DateParts[0][0], true
}

// Year returns the publication year, preferring the issued date and
// falling back to the electronic publication date. Returns false when
// neither date carries a year.
func (r Record) Year() (int, bool) {
	if y, ok := r.Issued.year(); ok {
		return y, true
	}
	return r.EpubDate.year()
}
