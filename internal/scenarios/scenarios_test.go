package scenarios

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macropanel/internal/errors"
	"macropanel/internal/timeseries"
	"macropanel/pkg/contracts/domain"
)

// buildPanel creates a panel with the given number of rows where every
// stressed variable ramps linearly, so the trailing mean is easy to verify.
func buildPanel(t *testing.T, rows int) *timeseries.Frame {
	t.Helper()
	index := make([]time.Time, rows)
	base := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := range index {
		index[i] = timeseries.MonthEnd(base.AddDate(0, i, 0))
	}

	panel, err := timeseries.NewFrame(index)
	require.NoError(t, err)

	ramp := func(start, step float64) []float64 {
		col := make([]float64, rows)
		for i := range col {
			col[i] = start + step*float64(i)
		}
		return col
	}
	require.NoError(t, panel.AddColumn(domain.VarUnemploymentRate, ramp(5.0, 0.1)))
	require.NoError(t, panel.AddColumn(domain.VarGDPGrowthYoY, ramp(2.0, 0)))
	require.NoError(t, panel.AddColumn(domain.VarPolicyRate, ramp(4.0, 0)))
	require.NoError(t, panel.AddColumn(domain.VarHPIChangeYoY, ramp(3.0, 0)))
	require.NoError(t, panel.AddColumn(domain.VarWTIPrice, ramp(75.0, 0)))
	require.NoError(t, panel.AddColumn(domain.VarUSDCAD, ramp(1.35, 0)))
	return panel
}

func TestBuild_BaselineIsTrailingMean(t *testing.T) {
	panel := buildPanel(t, 12)

	set, err := Build(context.Background(), panel)
	require.NoError(t, err)

	// Unemployment ramps 5.0, 5.1, ... 6.1; the mean of all 12 is 5.55.
	assert.InDelta(t, 5.55, set.Baseline.Values[domain.VarUnemploymentRate], 1e-9)
	assert.InDelta(t, 2.0, set.Baseline.Values[domain.VarGDPGrowthYoY], 1e-9)
	assert.InDelta(t, 75.0, set.Baseline.Values[domain.VarWTIPrice], 1e-9)
}

func TestBuild_TrailingWindowIgnoresOlderRows(t *testing.T) {
	panel := buildPanel(t, 24)

	set, err := Build(context.Background(), panel)
	require.NoError(t, err)

	// Only rows 12..23 count: unemployment 6.2..7.3, mean 6.75.
	assert.InDelta(t, 6.75, set.Baseline.Values[domain.VarUnemploymentRate], 1e-9)
}

func TestBuild_AdverseDeltas(t *testing.T) {
	set, err := Build(context.Background(), buildPanel(t, 12))
	require.NoError(t, err)

	baseline := set.Baseline.Values
	adverse := set.Adverse.Values

	assert.InDelta(t, baseline[domain.VarUnemploymentRate]+3.0, adverse[domain.VarUnemploymentRate], 1e-9)
	assert.InDelta(t, baseline[domain.VarGDPGrowthYoY]-3.0, adverse[domain.VarGDPGrowthYoY], 1e-9)
	assert.InDelta(t, baseline[domain.VarPolicyRate]+2.0, adverse[domain.VarPolicyRate], 1e-9)
	// HPI change is replaced, not shifted.
	assert.InDelta(t, -10.0, adverse[domain.VarHPIChangeYoY], 1e-9)
	// Untouched variables keep their baseline value.
	assert.InDelta(t, baseline[domain.VarUSDCAD], adverse[domain.VarUSDCAD], 1e-12)
	assert.InDelta(t, baseline[domain.VarWTIPrice], adverse[domain.VarWTIPrice], 1e-12)
}

func TestBuild_SeverelyAdverse(t *testing.T) {
	set, err := Build(context.Background(), buildPanel(t, 12))
	require.NoError(t, err)

	baseline := set.Baseline.Values
	severe := set.SeverelyAdverse.Values

	assert.InDelta(t, baseline[domain.VarUnemploymentRate]+5.0, severe[domain.VarUnemploymentRate], 1e-9)
	assert.InDelta(t, -5.0, severe[domain.VarGDPGrowthYoY], 1e-9)
	assert.InDelta(t, -20.0, severe[domain.VarHPIChangeYoY], 1e-9)
	assert.InDelta(t, baseline[domain.VarPolicyRate]+3.0, severe[domain.VarPolicyRate], 1e-9)
	// WTI is replaced with $40 regardless of the baseline level.
	assert.InDelta(t, 40.0, severe[domain.VarWTIPrice], 1e-9)
}

func TestBuild_InsufficientHistory(t *testing.T) {
	for _, rows := range []int{0, 1, 11} {
		_, err := Build(context.Background(), buildPanel(t, rows))
		require.Error(t, err, "rows=%d", rows)
		assert.True(t, errors.IsType(err, errors.ErrTypeInsufficientHistory))
	}
}

func TestBuild_GapsSkippedInTrailingMean(t *testing.T) {
	panel := buildPanel(t, 12)
	index := panel.Index()

	withGaps, err := timeseries.NewFrame(index)
	require.NoError(t, err)
	nan := math.NaN()
	require.NoError(t, withGaps.AddColumn(domain.VarUnemploymentRate,
		[]float64{5, 5, 5, nan, nan, 5, 5, 5, 5, 5, 5, 5}))
	require.NoError(t, withGaps.AddColumn(domain.VarGDPGrowthYoY,
		[]float64{nan, nan, nan, nan, nan, nan, nan, nan, nan, nan, nan, nan}))
	require.NoError(t, withGaps.AddColumn(domain.VarPolicyRate, make([]float64, 12)))
	require.NoError(t, withGaps.AddColumn(domain.VarHPIChangeYoY, make([]float64, 12)))
	require.NoError(t, withGaps.AddColumn(domain.VarWTIPrice, make([]float64, 12)))

	set, err := Build(context.Background(), withGaps)
	require.NoError(t, err)

	assert.InDelta(t, 5.0, set.Baseline.Values[domain.VarUnemploymentRate], 1e-9)
	assert.True(t, math.IsNaN(set.Baseline.Values[domain.VarGDPGrowthYoY]),
		"a fully-gapped variable has no baseline")
}

func TestSet_ScenarioOrder(t *testing.T) {
	set, err := Build(context.Background(), buildPanel(t, 12))
	require.NoError(t, err)

	got := set.Scenarios()
	require.Len(t, got, 3)
	assert.Equal(t, domain.ScenarioBaseline, got[0].Name)
	assert.Equal(t, domain.ScenarioAdverse, got[1].Name)
	assert.Equal(t, domain.ScenarioSeverelyAdverse, got[2].Name)
	assert.Equal(t, buildPanel(t, 12).Columns(), set.Variables)
}
