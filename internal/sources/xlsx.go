package sources

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"macropanel/internal/errors"
)

// ReadXLSX reads a spreadsheet-published extract (the CREA HPI workbook ships
// as xlsx). An empty sheet name selects the workbook's first sheet. skipRows
// leading rows are discarded before the header, mirroring ReadCSV.
func ReadXLSX(path, sheet string, skipRows int) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewStorageError(fmt.Sprintf("open workbook %s", path), err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.NewDataFormatError(
				fmt.Sprintf("workbook %s has no sheets", path), nil)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.NewDataFormatError(
			fmt.Sprintf("sheet %q not readable in %s", sheet, path), err).
			WithContext("sheet", sheet)
	}
	if len(rows) <= skipRows {
		return nil, errors.NewDataFormatError(
			fmt.Sprintf("workbook %s has no header after skipping %d rows", path, skipRows), nil).
			WithContext("path", path).
			WithContext("skip_rows", skipRows)
	}

	rows = rows[skipRows:]
	for _, row := range rows {
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}
	}

	return &Table{Header: rows[0], Rows: rows[1:]}, nil
}

// ReadTable dispatches on the file extension: .xlsx/.xls go through the
// workbook reader, everything else is treated as CSV.
func ReadTable(path string, skipRows int) (*Table, error) {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xls") {
		return ReadXLSX(path, "", skipRows)
	}
	return ReadCSV(path, skipRows)
}
