package csl

import "testing"

func TestRecordYear(t *testing.T) {
	tests := []struct {
		name     string
		record   Record
		wantYear int
		wantOK   bool
	}{
		{
			name:     "issued date",
			record:   Record{Issued: &Date{DateParts: [][]int{{2023, 3, 15}}}},
			wantYear: 2023,
			wantOK:   true,
		},
		{
			name:     "epub-date fallback",
			record:   Record{EpubDate: &Date{DateParts: [][]int{{2021}}}},
			wantYear: 2021,
			wantOK:   true,
		},
		{
			name: "issued preferred over epub-date",
			record: Record{
				Issued:   &Date{DateParts: [][]int{{2020}}},
				EpubDate: &Date{DateParts: [][]int{{2019}}},
			},
			wantYear: 2020,
			wantOK:   true,
		},
		{
			name:   "no dates",
			record: Record{},
			wantOK: false,
		},
		{
			name:   "issued without date-parts",
			record: Record{Issued: &Date{}},
			wantOK: false,
		},
		{
			name:   "issued with empty first tuple",
			record: Record{Issued: &Date{DateParts: [][]int{{}}}},
			wantOK: false,
		},
		{
			name: "empty issued falls through to epub-date",
			record: Record{
				Issued:   &Date{},
				EpubDate: &Date{DateParts: [][]int{{2018}}},
			},
			wantYear: 2018,
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.record.Year()
			if ok != tt.wantOK {
				t.Fatalf("Year() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.wantYear {
				t.Errorf("Year() = %d, want %d", got, tt.wantYear)
			}
		})
	}
}
