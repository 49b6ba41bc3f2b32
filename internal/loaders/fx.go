package loaders

import (
	"context"
	"log/slog"

	"macropanel/internal/config"
	"macropanel/internal/timeseries"
	"macropanel/pkg/contracts/domain"
)

// LoadFX parses the daily USD/CAD valet extract, resamples it to a monthly
// mean and derives month-over-month and year-over-year changes.
func LoadFX(ctx context.Context, cfg *config.Config) (*timeseries.Frame, error) {
	slog.InfoContext(ctx, "loading FX data", "file", cfg.Paths.FXFile)

	series, err := loadValetSeries(cfg, cfg.Paths.FXFile, domain.VarUSDCAD)
	if err != nil {
		return nil, err
	}

	w := cfg.DateWindow()
	monthly := timeseries.ResampleMonthly(series, w)

	frame, err := timeseries.NewFrame(w.MonthEnds())
	if err != nil {
		return nil, err
	}
	if err := frame.AddColumn(domain.VarUSDCAD, monthly); err != nil {
		return nil, err
	}
	if err := frame.AddColumn(domain.VarFXChangeMoM, timeseries.PctChange(monthly, 1)); err != nil {
		return nil, err
	}
	if err := frame.AddColumn(domain.VarFXChangeYoY, timeseries.PctChange(monthly, 12)); err != nil {
		return nil, err
	}
	return frame, nil
}
