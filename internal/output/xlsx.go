package output

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/prozkosny/pydata-zdenka/pkg/vypis"
)

// XLSXWriter writes a table-set as a multi-sheet workbook, one sheet
// per non-empty table with the column names as the header row.
type XLSXWriter struct {
	w     io.Writer
	names map[string]string
}

// NewXLSXWriter creates a workbook writer.
func NewXLSXWriter(w io.Writer, names map[string]string) *XLSXWriter {
	return &XLSXWriter{w: w, names: names}
}

// Write builds and emits the workbook. Tables with zero rows get no
// sheet; when every table is empty it returns ErrEmptyTableSet and
// writes nothing, because a workbook cannot have zero sheets.
func (x *XLSXWriter) Write(ts vypis.TableSet) error {
	if ts.Empty() {
		return ErrEmptyTableSet
	}

	f := excelize.NewFile()
	defer f.Close()

	keepDefault := false
	for _, s := range ts.Sheets() {
		if s.Table.Empty() {
			continue
		}

		name := s.Name
		if n, ok := x.names[s.Name]; ok {
			name = n
		}
		if name == "Sheet1" {
			keepDefault = true
		}

		index, err := f.NewSheet(name)
		if err != nil {
			return fmt.Errorf("create sheet %q: %w", name, err)
		}
		f.SetActiveSheet(index)

		if err := writeSheet(f, name, s.Table); err != nil {
			return err
		}
	}

	// Drop excelize's implicit first sheet unless a table claimed the
	// name.
	if !keepDefault {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("delete default sheet: %w", err)
		}
	}

	if _, err := f.WriteTo(x.w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// writeSheet fills one sheet with a header row followed by the table
// rows.
func writeSheet(f *excelize.File, sheet string, t vypis.Table) error {
	for col, header := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell for column %d: %w", col+1, err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set header cell %s: %w", cell, err)
		}
	}

	for r, row := range t.Rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return fmt.Errorf("cell for row %d column %d: %w", r+2, col+1, err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	return nil
}

// ReadWorkbook reads a workbook back as sheet-name→rows, header row
// included. Used to verify that extraction survives a write/read round
// trip.
func ReadWorkbook(r io.Reader) (map[string][][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := make(map[string][][]string)
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		sheets[name] = rows
	}
	return sheets, nil
}
