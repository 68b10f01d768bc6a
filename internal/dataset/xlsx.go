package dataset

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// LoadXLSX reads the first sheet of an XLSX workbook into a Dataset.
func LoadXLSX(path string) (Dataset, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "dataset: open xlsx")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("dataset: xlsx has no sheets")
	}

	sheet := f.Sheets[0]
	var ds Dataset
	for _, row := range sheet.Rows {
		cells := make(Row, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		ds = append(ds, cells)
	}
	if len(ds) == 0 {
		return nil, eris.New("dataset: xlsx sheet is empty")
	}
	return ds, nil
}

// SaveXLSX writes the dataset to a single-sheet XLSX workbook.
func SaveXLSX(ds Dataset, path string) error {
	if err := Validate(ds); err != nil {
		return err
	}

	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Sheet1")
	if err != nil {
		return eris.Wrap(err, "dataset: add xlsx sheet")
	}

	width := ds.Width()
	for _, row := range ds {
		r := sheet.AddRow()
		for _, cell := range Pad(append(Row(nil), row...), width) {
			r.AddCell().Value = cell
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrap(err, "dataset: save xlsx")
	}
	return nil
}
