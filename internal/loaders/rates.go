package loaders

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"macropanel/internal/config"
	"macropanel/internal/errors"
	"macropanel/internal/sources"
	"macropanel/internal/timeseries"
	"macropanel/pkg/contracts/domain"
)

// Bank of Canada valet CSVs: eight metadata rows, then a date column plus one
// series-code column.
const valetSkipRows = 8

// LoadInterestRates parses the three rate extracts (daily policy rate, weekly
// prime and 5-year conventional mortgage rates), resamples each to a monthly
// mean and derives the two spreads.
func LoadInterestRates(ctx context.Context, cfg *config.Config) (*timeseries.Frame, error) {
	slog.InfoContext(ctx, "loading interest rate data", "dir", cfg.Paths.DataDir)

	w := cfg.DateWindow()
	policy, err := loadValetSeries(cfg, cfg.Paths.PolicyRateFile, domain.VarPolicyRate)
	if err != nil {
		return nil, err
	}
	prime, err := loadValetSeries(cfg, cfg.Paths.PrimeRateFile, domain.VarPrimeRate)
	if err != nil {
		return nil, err
	}
	mortgage, err := loadValetSeries(cfg, cfg.Paths.MortgageRateFile, domain.VarMortgage5YRate)
	if err != nil {
		return nil, err
	}

	policyM := timeseries.ResampleMonthly(policy, w)
	primeM := timeseries.ResampleMonthly(prime, w)
	mortgageM := timeseries.ResampleMonthly(mortgage, w)

	frame, err := timeseries.NewFrame(w.MonthEnds())
	if err != nil {
		return nil, err
	}
	columns := []struct {
		name   string
		values []float64
	}{
		{domain.VarPolicyRate, policyM},
		{domain.VarPrimeRate, primeM},
		{domain.VarMortgage5YRate, mortgageM},
		{domain.VarPrimePolicySpread, timeseries.Spread(primeM, policyM)},
		{domain.VarMortgagePrimeSpread, timeseries.Spread(mortgageM, primeM)},
	}
	for _, col := range columns {
		if err := frame.AddColumn(col.name, col.values); err != nil {
			return nil, err
		}
	}
	return frame, nil
}

// loadValetSeries reads one Bank of Canada valet CSV into a native-frequency
// series. The value column is the first column after "date".
func loadValetSeries(cfg *config.Config, file, name string) (*timeseries.Series, error) {
	path := filepath.Join(cfg.Paths.DataDir, file)
	table, err := sources.ReadCSV(path, valetSkipRows)
	if err != nil {
		return nil, err
	}

	dateIdx := table.ColumnIndex("date")
	if dateIdx < 0 {
		return nil, errors.NewDataFormatError(
			fmt.Sprintf("date column not found in %s", file), nil).
			WithContext("file", file)
	}
	valueIdx := -1
	for i := range table.Header {
		if i != dateIdx {
			valueIdx = i
			break
		}
	}
	if valueIdx < 0 {
		return nil, errors.NewDataFormatError(
			fmt.Sprintf("no value column in %s", file), nil).
			WithContext("file", file)
	}

	var points []timeseries.Point
	for _, row := range table.Rows {
		t, err := sources.ParseDate(sources.Cell(row, dateIdx))
		if err != nil {
			// Trailing footnote rows are common in valet extracts.
			continue
		}
		points = append(points, timeseries.Point{
			Time:  t,
			Value: sources.ParseNumeric(sources.Cell(row, valueIdx)),
		})
	}
	return timeseries.NewSeries(name, points), nil
}
