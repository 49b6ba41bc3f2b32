package pipeline

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macropanel/internal/config"
	"macropanel/internal/errors"
	"macropanel/internal/loaders"
	"macropanel/internal/timeseries"
	"macropanel/pkg/contracts/domain"
)

func monthEnds(n int) []time.Time {
	index := make([]time.Time, n)
	t := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	for i := range index {
		index[i] = t
		t = timeseries.MonthEnd(t.AddDate(0, 0, 1))
	}
	return index
}

func constant(n int, v float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = v
	}
	return values
}

// stubLoader returns a fixed frame for the given columns, sidestepping file
// parsing so runner behavior can be tested in isolation.
func stubLoader(t *testing.T, name string, columns map[string]float64) loaders.Loader {
	t.Helper()
	return loaders.Loader{
		Name: name,
		Load: func(ctx context.Context, cfg *config.Config) (*timeseries.Frame, error) {
			frame, err := timeseries.NewFrame(monthEnds(12))
			require.NoError(t, err)
			for col, v := range columns {
				require.NoError(t, frame.AddColumn(col, constant(12, v)))
			}
			return frame, nil
		},
	}
}

func testRunner(t *testing.T, outputDir string, stubs []loaders.Loader) *Runner {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.OutputDir = outputDir
	require.NoError(t, cfg.Validate())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &Runner{cfg: cfg, logger: logger, loaders: stubs}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	runner := testRunner(t, dir, []loaders.Loader{
		stubLoader(t, "labour", map[string]float64{domain.VarUnemploymentRate: 5.5}),
		stubLoader(t, "gdp", map[string]float64{domain.VarGDPGrowthYoY: 2.0}),
		stubLoader(t, "rates", map[string]float64{
			domain.VarPolicyRate:        4.5,
			domain.VarPrimeRate:         6.5,
			domain.VarMortgage5YRate:    5.8,
			domain.VarPrimePolicySpread: 2.0,
		}),
		stubLoader(t, "housing", map[string]float64{domain.VarHPIChangeYoY: 3.0}),
	})

	result, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 12, result.Panel.Len())
	assert.True(t, result.Panel.HasColumn(domain.VarEconomicCycleScore))
	assert.True(t, result.Panel.HasColumn(domain.VarCreditConditions))
	assert.True(t, result.Panel.HasColumn(domain.VarHousingRiskScore))

	adverse := result.Scenarios.Adverse.Values
	assert.InDelta(t, 8.5, adverse[domain.VarUnemploymentRate], 1e-9)

	require.Len(t, result.Outputs, 4)
	for _, name := range []string{
		config.ConsolidatedCSV,
		config.ScenariosCSV,
		config.DictionaryCSV,
		config.QualityReportTXT,
	} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "output %s", name)
	}
}

func TestRunLoaderFailure(t *testing.T) {
	failing := loaders.Loader{
		Name: "cpi",
		Load: func(ctx context.Context, cfg *config.Config) (*timeseries.Frame, error) {
			return nil, errors.NewDataFormatError("no header row", nil)
		},
	}
	runner := testRunner(t, t.TempDir(), []loaders.Loader{
		failing,
		stubLoader(t, "labour", map[string]float64{domain.VarUnemploymentRate: 5.5}),
	})

	_, err := runner.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeDataFormat))
}

func TestRunShortHistory(t *testing.T) {
	short := loaders.Loader{
		Name: "labour",
		Load: func(ctx context.Context, cfg *config.Config) (*timeseries.Frame, error) {
			frame, err := timeseries.NewFrame(monthEnds(6))
			require.NoError(t, err)
			for _, col := range []string{
				domain.VarUnemploymentRate, domain.VarGDPGrowthYoY,
				domain.VarPrimeRate, domain.VarMortgage5YRate,
				domain.VarPrimePolicySpread, domain.VarHPIChangeYoY,
			} {
				require.NoError(t, frame.AddColumn(col, constant(6, 1)))
			}
			return frame, nil
		},
	}
	runner := testRunner(t, t.TempDir(), []loaders.Loader{short})

	_, err := runner.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeInsufficientHistory))
}
