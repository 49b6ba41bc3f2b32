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

// StatCan CPI extract layout (table 18-10-0004-01)
const (
	cpiSkipRows      = 9
	cpiLabelColumn   = "Products and product groups 3 4"
	cpiAllItemsLabel = "All-items"
)

// LoadCPI parses the monthly CPI extract and derives year-over-year inflation.
// The extract is row-oriented: product groups label the rows and months label
// the columns.
func LoadCPI(ctx context.Context, cfg *config.Config) (*timeseries.Frame, error) {
	path := filepath.Join(cfg.Paths.DataDir, cfg.Paths.CPIFile)
	slog.InfoContext(ctx, "loading CPI data", "path", path)

	table, err := sources.ReadCSV(path, cpiSkipRows)
	if err != nil {
		return nil, err
	}

	row, err := table.FindRow(cpiLabelColumn, cpiAllItemsLabel)
	if err != nil {
		return nil, err
	}

	w := cfg.DateWindow()
	series := timeseries.NewSeries(domain.VarCPI, rowPoints(row, monthColumns(table.Header, 1)))
	values := timeseries.ResampleMonthly(series, w)

	frame, err := timeseries.NewFrame(w.MonthEnds())
	if err != nil {
		return nil, err
	}
	if err := frame.AddColumn(domain.VarCPI, values); err != nil {
		return nil, err
	}
	if err := frame.AddColumn(domain.VarInflationYoY, timeseries.PctChange(values, 12)); err != nil {
		return nil, err
	}
	return frame, nil
}
