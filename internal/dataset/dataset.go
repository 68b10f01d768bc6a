// Package dataset defines the in-memory spreadsheet model shared by every
// enrichment operation: an ordered list of string rows where row 0 is the
// header. Rows may be ragged; all indexed access goes through the accessor
// functions, which pad to the header width.
package dataset

import (
	"strings"

	"github.com/rotisserie/eris"
)

// Row is one record as an ordered sequence of string cells.
type Row = []string

// Dataset is a header row followed by zero or more data rows.
type Dataset []Row

// Column positions are fixed by convention across the input files we accept.
const (
	ColName        = 0
	ColURL         = 1
	ColDescription = 2
	ColDossier     = 3
)

// Validate checks the structural invariants before any operation runs:
// a dataset must exist and carry a non-empty header row.
func Validate(ds Dataset) error {
	if len(ds) == 0 {
		return eris.New("dataset: empty dataset")
	}
	if len(ds[0]) == 0 {
		return eris.New("dataset: header row has no columns")
	}
	return nil
}

// Width returns the logical column count, taken from the header row.
func (ds Dataset) Width() int {
	if len(ds) == 0 {
		return 0
	}
	return len(ds[0])
}

// DataRows returns the rows after the header. The returned slice aliases ds.
func (ds Dataset) DataRows() []Row {
	if len(ds) <= 1 {
		return nil
	}
	return ds[1:]
}

// Get reads a cell, returning "" when the row is shorter than col+1.
func Get(row Row, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// Set writes a cell, padding the row in place up to col+1 cells first.
// It returns the (possibly reallocated) row.
func Set(row Row, col int, val string) Row {
	for len(row) <= col {
		row = append(row, "")
	}
	row[col] = val
	return row
}

// Pad returns row extended with empty cells to at least width cells.
func Pad(row Row, width int) Row {
	for len(row) < width {
		row = append(row, "")
	}
	return row
}

// Clone deep-copies the dataset so a run can mutate its working copy
// without touching the caller's rows.
func Clone(ds Dataset) Dataset {
	out := make(Dataset, len(ds))
	for i, row := range ds {
		out[i] = append(Row(nil), row...)
	}
	return out
}

// Name returns row's trimmed organization name cell.
func Name(row Row) string {
	return strings.TrimSpace(Get(row, ColName))
}
