package exporter

import (
	"context"
	"math"

	"gonum.org/v1/gonum/stat"

	"macropanel/internal/config"
	"macropanel/internal/timeseries"
)

// ColumnStats is one data dictionary entry: derived metadata for a panel
// variable.
type ColumnStats struct {
	Variable     string
	NonNullCount int
	NullCount    int
	Min          float64
	Mean         float64
	Max          float64
	Std          float64
}

// DescribePanel computes data dictionary entries for every panel column.
func DescribePanel(panel *timeseries.Frame) []ColumnStats {
	entries := make([]ColumnStats, 0, len(panel.Columns()))
	for _, name := range panel.Columns() {
		values, _ := panel.Column(name)
		entries = append(entries, describeColumn(name, values))
	}
	return entries
}

func describeColumn(name string, values []float64) ColumnStats {
	clean := timeseries.NonNaN(values)
	entry := ColumnStats{
		Variable:     name,
		NonNullCount: len(clean),
		NullCount:    len(values) - len(clean),
		Min:          math.NaN(),
		Mean:         math.NaN(),
		Max:          math.NaN(),
		Std:          math.NaN(),
	}
	if len(clean) == 0 {
		return entry
	}

	entry.Min = clean[0]
	entry.Max = clean[0]
	for _, v := range clean {
		entry.Min = math.Min(entry.Min, v)
		entry.Max = math.Max(entry.Max, v)
	}
	entry.Mean = stat.Mean(clean, nil)
	if len(clean) > 1 {
		entry.Std = stat.StdDev(clean, nil)
	}
	return entry
}

// WriteDataDictionary exports the dictionary: variable name, type and summary
// statistics per panel column.
func (w *Writer) WriteDataDictionary(ctx context.Context, panel *timeseries.Frame) (string, error) {
	headers := []string{"Variable", "Type", "Non_Null_Count", "Null_Count", "Min", "Mean", "Max", "Std"}

	var records [][]string
	for _, entry := range DescribePanel(panel) {
		records = append(records, []string{
			entry.Variable,
			"float64",
			formatInt(entry.NonNullCount),
			formatInt(entry.NullCount),
			formatStat(entry.Min),
			formatStat(entry.Mean),
			formatStat(entry.Max),
			formatStat(entry.Std),
		})
	}

	return w.WriteSimpleCSV(config.DictionaryCSV, headers, records)
}
