package exporter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"macropanel/internal/config"
	"macropanel/internal/timeseries"
	"macropanel/pkg/contracts/domain"
)

// WriteQualityReport renders the human-readable data quality report: dataset
// overview, per-column missing data summary and key-variable statistics.
func (w *Writer) WriteQualityReport(ctx context.Context, panel *timeseries.Frame) (string, error) {
	return w.writeText(config.QualityReportTXT, RenderQualityReport(panel, time.Now()))
}

// RenderQualityReport builds the report text. The generation timestamp is a
// parameter so tests stay deterministic.
func RenderQualityReport(panel *timeseries.Frame, now time.Time) string {
	divider := strings.Repeat("=", 60)
	var report []string
	report = append(report, divider)
	report = append(report, "MACRO DATA QUALITY REPORT")
	report = append(report, divider)
	report = append(report, fmt.Sprintf("\nGenerated on: %s", now.Format("2006-01-02 15:04:05")))

	report = append(report, "\nDataset Overview:")
	report = append(report, fmt.Sprintf("- Total records: %d", panel.Len()))
	report = append(report, fmt.Sprintf("- Total variables: %d", len(panel.Columns())))
	if panel.Len() > 0 {
		index := panel.Index()
		report = append(report, fmt.Sprintf("- Date range: %s to %s",
			index[0].Format(dateFormat), index[len(index)-1].Format(dateFormat)))
	}

	report = append(report, "\nMissing Data Summary:")
	for _, entry := range DescribePanel(panel) {
		if entry.NullCount == 0 {
			continue
		}
		pct := float64(entry.NullCount) / float64(panel.Len()) * 100
		report = append(report, fmt.Sprintf("- %s: %d missing values (%.2f%%)",
			entry.Variable, entry.NullCount, pct))
	}

	report = append(report, "\nKey Statistics:")
	for _, name := range domain.KeyVariables {
		values, ok := panel.Column(name)
		if !ok {
			continue
		}
		entry := describeColumn(name, values)
		report = append(report, fmt.Sprintf("\n%s:", name))
		report = append(report, fmt.Sprintf("  Mean: %s", formatStat(entry.Mean)))
		report = append(report, fmt.Sprintf("  Std: %s", formatStat(entry.Std)))
		report = append(report, fmt.Sprintf("  Min: %s", formatStat(entry.Min)))
		report = append(report, fmt.Sprintf("  Max: %s", formatStat(entry.Max)))
	}

	return strings.Join(report, "\n")
}
