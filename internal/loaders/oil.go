package loaders

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"macropanel/internal/config"
	"macropanel/internal/errors"
	"macropanel/internal/sources"
	"macropanel/internal/timeseries"
	"macropanel/pkg/contracts/domain"
)

// Alberta oil price extract: long format, one row per (date, benchmark) pair.
const (
	oilDateColumn  = "Date"
	oilTypeColumn  = "Type"
	oilValueColumn = "Value"
	oilTypeWTI     = "WTI"
	oilTypeWCS     = "WCS"
)

// LoadOil splits the typed long-format extract into WTI and WCS price columns
// and derives the WCS-WTI differential and WTI year-over-year change.
func LoadOil(ctx context.Context, cfg *config.Config) (*timeseries.Frame, error) {
	path, err := sources.FindSource(cfg.Paths.DataDir, cfg.Paths.OilGlob)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "loading oil price data", "path", path)

	table, err := sources.ReadCSV(path, 0)
	if err != nil {
		return nil, err
	}

	indices := make(map[string]int, 3)
	for _, name := range []string{oilDateColumn, oilTypeColumn, oilValueColumn} {
		idx := table.ColumnIndex(name)
		if idx < 0 {
			return nil, errors.NewDataFormatError(
				fmt.Sprintf("column %q not found in oil price source", name), nil).
				WithContext("column", name)
		}
		indices[name] = idx
	}

	var wtiPoints, wcsPoints []timeseries.Point
	for _, row := range table.Rows {
		t, err := sources.ParseDate(sources.Cell(row, indices[oilDateColumn]))
		if err != nil {
			continue
		}
		p := timeseries.Point{Time: t, Value: sources.ParseNumeric(sources.Cell(row, indices[oilValueColumn]))}
		switch strings.ToUpper(sources.Cell(row, indices[oilTypeColumn])) {
		case oilTypeWTI:
			wtiPoints = append(wtiPoints, p)
		case oilTypeWCS:
			wcsPoints = append(wcsPoints, p)
		}
	}

	w := cfg.DateWindow()
	wti := timeseries.ResampleMonthly(timeseries.NewSeries(domain.VarWTIPrice, wtiPoints), w)
	wcs := timeseries.ResampleMonthly(timeseries.NewSeries(domain.VarWCSPrice, wcsPoints), w)

	frame, err := timeseries.NewFrame(w.MonthEnds())
	if err != nil {
		return nil, err
	}
	columns := []struct {
		name   string
		values []float64
	}{
		{domain.VarWTIPrice, wti},
		{domain.VarWCSPrice, wcs},
		{domain.VarWCSWTISpread, timeseries.Spread(wcs, wti)},
		{domain.VarWTIChangeYoY, timeseries.PctChange(wti, 12)},
	}
	for _, col := range columns {
		if err := frame.AddColumn(col.name, col.values); err != nil {
			return nil, err
		}
	}
	return frame, nil
}
