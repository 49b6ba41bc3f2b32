package loaders

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"time"

	"macropanel/internal/config"
	"macropanel/internal/errors"
	"macropanel/internal/sources"
	"macropanel/internal/timeseries"
	"macropanel/pkg/contracts/domain"
)

// StatCan GDP extract layout (table 36-10-0402-01): one row per geography,
// one column per year.
const (
	gdpSkipRows       = 10
	gdpLabelColumn    = "Geography"
	gdpGeographyLabel = "Ontario"
)

// LoadGDP parses the annual GDP extract, spreads it onto the monthly calendar
// with the configured interpolation method and derives year-over-year growth.
func LoadGDP(ctx context.Context, cfg *config.Config) (*timeseries.Frame, error) {
	path := filepath.Join(cfg.Paths.DataDir, cfg.Paths.GDPFile)
	slog.InfoContext(ctx, "loading GDP data", "path", path, "method", string(cfg.Method()))

	table, err := sources.ReadCSV(path, gdpSkipRows)
	if err != nil {
		return nil, err
	}

	row, err := table.FindRow(gdpLabelColumn, gdpGeographyLabel)
	if err != nil {
		return nil, err
	}

	w := cfg.DateWindow()
	var points []timeseries.Point
	for year := w.Start.Year(); year <= w.End.Year(); year++ {
		idx := table.ColumnIndex(strconv.Itoa(year))
		if idx < 0 {
			return nil, errors.NewDataFormatError(
				fmt.Sprintf("year column %d not found in GDP source", year), nil).
				WithContext("year", year)
		}
		points = append(points, timeseries.Point{
			Time:  time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			Value: sources.ParseNumeric(sources.Cell(row, idx)),
		})
	}

	annual := timeseries.NewSeries(domain.VarGDPOntario, points)
	monthly, err := timeseries.AlignAnnual(annual, w, cfg.Method())
	if err != nil {
		return nil, err
	}

	frame, err := timeseries.NewFrame(w.MonthEnds())
	if err != nil {
		return nil, err
	}
	if err := frame.AddColumn(domain.VarGDPOntario, monthly); err != nil {
		return nil, err
	}
	if err := frame.AddColumn(domain.VarGDPGrowthYoY, timeseries.PctChange(monthly, 12)); err != nil {
		return nil, err
	}
	return frame, nil
}
