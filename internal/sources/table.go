package sources

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"macropanel/internal/errors"
)

// Table is a decoded raw tabular source: one header row plus data records,
// all cells trimmed. Ragged rows are allowed, the government extracts pad
// inconsistently.
type Table struct {
	Header []string
	Rows   [][]string
}

// ColumnIndex returns the position of a named header column, or -1 if absent.
// Comparison ignores surrounding whitespace.
func (t *Table) ColumnIndex(name string) int {
	want := strings.TrimSpace(name)
	for i, h := range t.Header {
		if strings.TrimSpace(h) == want {
			return i
		}
	}
	return -1
}

// FindRow returns the first record whose value in the named label column
// equals label. A missing column or label is a data format error: the raw
// source does not have the structure the loader expects.
func (t *Table) FindRow(labelColumn, label string) ([]string, error) {
	idx := t.ColumnIndex(labelColumn)
	if idx < 0 {
		return nil, errors.NewDataFormatError(
			fmt.Sprintf("label column %q not found in source", labelColumn), nil).
			WithContext("column", labelColumn)
	}
	want := strings.TrimSpace(label)
	for _, row := range t.Rows {
		if idx < len(row) && strings.TrimSpace(row[idx]) == want {
			return row, nil
		}
	}
	return nil, errors.NewDataFormatError(
		fmt.Sprintf("label %q not found in column %q", label, labelColumn), nil).
		WithContext("column", labelColumn).
		WithContext("label", label)
}

// Cell returns the cell at the given column of a record, empty when the row
// is too short.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ParseNumeric coerces a raw cell to a number. Currency symbols, thousands
// separators and surrounding whitespace are stripped first; anything still
// unparsable (placeholder text, empty cells) becomes NaN rather than an
// error, only the table structure is load-bearing.
func ParseNumeric(cell string) float64 {
	cleaned := strings.TrimSpace(cell)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSuffix(cleaned, "%")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// dateLayouts covers the formats the raw extracts publish dates in.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"January 2006",
	"Jan 2006",
	"Jan-06",
	"2006-01",
}

// ParseDate parses a raw date cell against the known extract layouts.
func ParseDate(cell string) (time.Time, error) {
	cleaned := strings.TrimSpace(cell)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.NewParsingError(
		fmt.Sprintf("unrecognized date %q", cell), nil)
}
