// Package partition splits a dataset's data rows into bounded, ordered
// batches and identifies which rows in each batch still need a URL lookup.
package partition

import (
	"github.com/sells-group/urlfinder-cli/internal/dataset"
	"github.com/sells-group/urlfinder-cli/internal/urlcheck"
)

// Lookup ties a row submitted to the generation service back to its
// position inside the batch slice, so responses can be scattered back
// without disturbing rows that were never sent.
type Lookup struct {
	Offset int // position within the batch slice
	Row    dataset.Row
}

// Batch is one contiguous slice of data rows. Seq is 1-based and stable
// across a run; Start/End index into the data-row slice the batch was cut
// from (End exclusive).
type Batch struct {
	Seq     int
	Start   int
	End     int
	Rows    []dataset.Row
	Lookups []Lookup
}

// NoCall reports whether every row in the batch already has a plausible
// URL. A no-call batch must never reach the generation client.
func (b *Batch) NoCall() bool {
	return len(b.Lookups) == 0
}

// Split cuts dataRows into contiguous batches of at most batchSize rows,
// filtering each down to the rows whose URL column fails the plausibility
// check. batchSize values below 1 are treated as 1.
func Split(dataRows []dataset.Row, batchSize int) []Batch {
	if batchSize < 1 {
		batchSize = 1
	}

	var batches []Batch
	for start := 0; start < len(dataRows); start += batchSize {
		end := start + batchSize
		if end > len(dataRows) {
			end = len(dataRows)
		}

		b := Batch{
			Seq:   len(batches) + 1,
			Start: start,
			End:   end,
			Rows:  dataRows[start:end],
		}
		for off, row := range b.Rows {
			if !urlcheck.IsPlausible(dataset.Get(row, dataset.ColURL)) {
				b.Lookups = append(b.Lookups, Lookup{Offset: off, Row: row})
			}
		}
		batches = append(batches, b)
	}
	return batches
}
