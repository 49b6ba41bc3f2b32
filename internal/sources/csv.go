package sources

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"macropanel/internal/errors"
)

// ReadCSV reads a raw CSV extract, discarding skipRows leading records before
// the header row. The reader is lenient about field counts: StatCan and Bank
// of Canada extracts pad rows unevenly.
func ReadCSV(path string, skipRows int) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewStorageError(fmt.Sprintf("open source %s", path), err)
	}
	defer f.Close()

	return readCSVFrom(f, path, skipRows)
}

func readCSVFrom(r io.Reader, path string, skipRows int) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var header []string
	var rows [][]string
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewParsingError(fmt.Sprintf("read %s line %d", path, line+1), err)
		}
		line++
		if line <= skipRows {
			continue
		}
		for i := range record {
			record[i] = strings.TrimSpace(strings.TrimPrefix(record[i], "\uFEFF"))
		}
		if header == nil {
			header = record
			continue
		}
		rows = append(rows, record)
	}

	if header == nil {
		return nil, errors.NewDataFormatError(
			fmt.Sprintf("source %s has no header after skipping %d rows", path, skipRows), nil).
			WithContext("path", path).
			WithContext("skip_rows", skipRows)
	}

	return &Table{Header: header, Rows: rows}, nil
}
