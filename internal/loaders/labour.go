package loaders

import (
	"context"
	"log/slog"
	"path/filepath"

	"macropanel/internal/config"
	"macropanel/internal/sources"
	"macropanel/internal/timeseries"
	"macropanel/pkg/contracts/domain"
)

// StatCan labour force extract layout (table 14-10-0287-01). The month
// columns start after six leading descriptor columns.
const (
	labourSkipRows         = 12
	labourLabelColumn      = "Labour force characteristics"
	labourUnemploymentRow  = "Unemployment rate 16"
	labourEmploymentRow    = "Employment rate 18"
	labourMonthColumnStart = 6
)

// LoadLabourForce parses the unemployment and employment rate rows. Both are
// pass-through percentages: no derived columns.
func LoadLabourForce(ctx context.Context, cfg *config.Config) (*timeseries.Frame, error) {
	path := filepath.Join(cfg.Paths.DataDir, cfg.Paths.LabourFile)
	slog.InfoContext(ctx, "loading labour force data", "path", path)

	table, err := sources.ReadCSV(path, labourSkipRows)
	if err != nil {
		return nil, err
	}

	unempRow, err := table.FindRow(labourLabelColumn, labourUnemploymentRow)
	if err != nil {
		return nil, err
	}
	empRow, err := table.FindRow(labourLabelColumn, labourEmploymentRow)
	if err != nil {
		return nil, err
	}

	w := cfg.DateWindow()
	cols := monthColumns(table.Header, labourMonthColumnStart)
	unemployment := timeseries.ResampleMonthly(
		timeseries.NewSeries(domain.VarUnemploymentRate, rowPoints(unempRow, cols)), w)
	employment := timeseries.ResampleMonthly(
		timeseries.NewSeries(domain.VarEmploymentRate, rowPoints(empRow, cols)), w)

	frame, err := timeseries.NewFrame(w.MonthEnds())
	if err != nil {
		return nil, err
	}
	if err := frame.AddColumn(domain.VarUnemploymentRate, unemployment); err != nil {
		return nil, err
	}
	if err := frame.AddColumn(domain.VarEmploymentRate, employment); err != nil {
		return nil, err
	}
	return frame, nil
}
