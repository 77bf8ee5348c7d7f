package utils

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Table is the shape every exporter accepts: a header row plus cell
// values that already carry their display formatting.
type Table struct {
	Header []string
	Rows   [][]string
}

// ExportCSV serializes a table as UTF-8 CSV bytes.
func ExportCSV(t Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportExcel serializes a table as a single-sheet xlsx workbook.
func ExportExcel(t Table, sheetName string) ([]byte, error) {
	return ExportExcelSheets([]string{sheetName}, map[string]Table{sheetName: t})
}

// ExportExcelSheets writes one worksheet per table, in the order the
// names are given. Sheet names are truncated to the Excel limit of 31
// characters.
func ExportExcelSheets(order []string, tables map[string]Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		t, ok := tables[name]
		if !ok {
			return nil, fmt.Errorf("aba %q sem dados", name)
		}
		sheet := name
		if len(sheet) > 31 {
			sheet = sheet[:31]
		}
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, err
			}
		}

		if err := writeRow(f, sheet, 1, t.Header); err != nil {
			return nil, err
		}
		for r, row := range t.Rows {
			if err := writeRow(f, sheet, r+2, row); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, cells []string) error {
	addr, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	return f.SetSheetRow(sheet, addr, &values)
}
