package dataset

import (
	"encoding/csv"
	"os"

	"github.com/rotisserie/eris"
)

// LoadCSV reads a CSV file into a Dataset. The first record is treated as
// the header row. Ragged rows are accepted as-is; accessors pad on read.
func LoadCSV(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "dataset: open csv")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "dataset: read csv")
	}
	if len(records) == 0 {
		return nil, eris.New("dataset: csv has no rows")
	}

	ds := make(Dataset, len(records))
	for i, rec := range records {
		ds[i] = rec
	}
	return ds, nil
}

// SaveCSV writes the dataset back out, padding every row to the header width
// so downstream consumers see a rectangular file.
func SaveCSV(ds Dataset, path string) error {
	if err := Validate(ds); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "dataset: create csv")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	width := ds.Width()
	for _, row := range ds {
		if err := w.Write(Pad(append(Row(nil), row...), width)); err != nil {
			return eris.Wrap(err, "dataset: write csv row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrap(err, "dataset: flush csv")
	}
	return nil
}
