package loaders

import (
	"context"
	"strings"
	"time"

	"macropanel/internal/config"
	"macropanel/internal/sources"
	"macropanel/internal/timeseries"
)

// LoadFunc parses one raw source into an aligned monthly frame.
type LoadFunc func(ctx context.Context, cfg *config.Config) (*timeseries.Frame, error)

// Loader pairs a load function with a stable name for logging.
type Loader struct {
	Name string
	Load LoadFunc
}

// All returns the seven series loaders in panel column order: CPI, labour,
// GDP, interest rates, FX, housing, oil.
func All() []Loader {
	return []Loader{
		{Name: "cpi", Load: LoadCPI},
		{Name: "labour", Load: LoadLabourForce},
		{Name: "gdp", Load: LoadGDP},
		{Name: "rates", Load: LoadInterestRates},
		{Name: "fx", Load: LoadFX},
		{Name: "housing", Load: LoadHousing},
		{Name: "oil", Load: LoadOil},
	}
}

// monthColumns parses header cells formatted like "January 2020" into
// month-end timestamps, returning each parsed month with its column index.
// Unparsable headers (stray label or footnote columns) are skipped.
func monthColumns(header []string, from int) []monthColumn {
	var cols []monthColumn
	for i := from; i < len(header); i++ {
		t, err := time.Parse("January 2006", strings.TrimSpace(header[i]))
		if err != nil {
			continue
		}
		cols = append(cols, monthColumn{index: i, month: timeseries.MonthEnd(t.UTC())})
	}
	return cols
}

type monthColumn struct {
	index int
	month time.Time
}

// rowPoints converts a label row's month columns into series observations.
func rowPoints(row []string, cols []monthColumn) []timeseries.Point {
	pts := make([]timeseries.Point, 0, len(cols))
	for _, c := range cols {
		pts = append(pts, timeseries.Point{
			Time:  c.month,
			Value: sources.ParseNumeric(sources.Cell(row, c.index)),
		})
	}
	return pts
}
