package loaders

import (
	"context"
	"fmt"
	"log/slog"

	"macropanel/internal/config"
	"macropanel/internal/errors"
	"macropanel/internal/sources"
	"macropanel/internal/timeseries"
	"macropanel/pkg/contracts/domain"
)

// CREA HPI extract layout: no header skip, a Date column and the aggregate
// composite index published as a currency-formatted string.
const (
	housingDateColumn = "Date"
	housingHPIColumn  = "Aggregate Composite MLS® HPI*"
)

// LoadHousing parses the MLS housing price index (CSV or workbook, located by
// glob since the file name carries its publication month) and derives
// month-over-month and year-over-year changes.
func LoadHousing(ctx context.Context, cfg *config.Config) (*timeseries.Frame, error) {
	path, err := sources.FindSource(cfg.Paths.DataDir, cfg.Paths.HousingGlob)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "loading housing price index", "path", path)

	table, err := sources.ReadTable(path, 0)
	if err != nil {
		return nil, err
	}

	dateIdx := table.ColumnIndex(housingDateColumn)
	if dateIdx < 0 {
		return nil, errors.NewDataFormatError(
			fmt.Sprintf("column %q not found in housing source", housingDateColumn), nil).
			WithContext("column", housingDateColumn)
	}
	hpiIdx := table.ColumnIndex(housingHPIColumn)
	if hpiIdx < 0 {
		return nil, errors.NewDataFormatError(
			fmt.Sprintf("column %q not found in housing source", housingHPIColumn), nil).
			WithContext("column", housingHPIColumn)
	}

	var points []timeseries.Point
	for _, row := range table.Rows {
		t, err := sources.ParseDate(sources.Cell(row, dateIdx))
		if err != nil {
			continue
		}
		points = append(points, timeseries.Point{
			Time:  t,
			Value: sources.ParseNumeric(sources.Cell(row, hpiIdx)),
		})
	}

	w := cfg.DateWindow()
	monthly := timeseries.ResampleMonthly(timeseries.NewSeries(domain.VarHPI, points), w)

	frame, err := timeseries.NewFrame(w.MonthEnds())
	if err != nil {
		return nil, err
	}
	if err := frame.AddColumn(domain.VarHPI, monthly); err != nil {
		return nil, err
	}
	if err := frame.AddColumn(domain.VarHPIChangeMoM, timeseries.PctChange(monthly, 1)); err != nil {
		return nil, err
	}
	if err := frame.AddColumn(domain.VarHPIChangeYoY, timeseries.PctChange(monthly, 12)); err != nil {
		return nil, err
	}
	return frame, nil
}
