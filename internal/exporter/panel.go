package exporter

import (
	"context"

	"macropanel/internal/config"
	"macropanel/internal/scenarios"
	"macropanel/internal/timeseries"
)

const dateFormat = "2006-01-02"

// WritePanel exports the consolidated panel: one row per month, one column
// per variable in panel order.
func (w *Writer) WritePanel(ctx context.Context, panel *timeseries.Frame) (string, error) {
	headers := append([]string{"Date"}, panel.Columns()...)

	records := make([][]string, panel.Len())
	for i, month := range panel.Index() {
		record := make([]string, 0, len(headers))
		record = append(record, month.Format(dateFormat))
		for _, name := range panel.Columns() {
			values, _ := panel.Column(name)
			record = append(record, formatValue(values[i]))
		}
		records[i] = record
	}

	return w.WriteSimpleCSV(config.ConsolidatedCSV, headers, records)
}

// WriteScenarios exports the stress scenario table: three rows (Baseline,
// Adverse, Severely_Adverse) by all panel variables.
func (w *Writer) WriteScenarios(ctx context.Context, set *scenarios.Set) (string, error) {
	headers := append([]string{"Scenario"}, set.Variables...)

	var records [][]string
	for _, scenario := range set.Scenarios() {
		record := make([]string, 0, len(headers))
		record = append(record, scenario.Name)
		for _, name := range set.Variables {
			record = append(record, formatValue(scenario.Values[name]))
		}
		records = append(records, record)
	}

	return w.WriteSimpleCSV(config.ScenariosCSV, headers, records)
}
