// Package scenarios derives the three named stress scenarios from the
// trailing year of the consolidated panel. Scenarios are direct parameter
// overrides of the trailing-average baseline: dependent composites are not
// recomputed, matching the model documentation.
package scenarios

import (
	"context"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/stat"

	"macropanel/internal/errors"
	"macropanel/internal/timeseries"
	"macropanel/pkg/contracts/domain"
)

// BaselineMonths is the trailing window the baseline averages over.
const BaselineMonths = 12

// Stress deltas and overrides. Design constants from the model
// documentation; deltas add to the baseline, overrides replace it.
const (
	AdverseUnemploymentDelta = 3.0
	AdverseGDPGrowthDelta    = -3.0
	AdversePolicyRateDelta   = 2.0
	AdverseHPIChangeOverride = -10.0

	SevereUnemploymentDelta = 5.0
	SevereGDPGrowthOverride = -5.0
	SevereHPIChangeOverride = -20.0
	SeverePolicyRateDelta   = 3.0
	SevereWTIPriceOverride  = 40.0
)

// Scenario is a named stressed parameter vector: one value per panel variable.
type Scenario struct {
	Name   string
	Values map[string]float64
}

// Set holds the three scenarios plus the panel's variable order for
// deterministic presentation.
type Set struct {
	Variables       []string
	Baseline        Scenario
	Adverse         Scenario
	SeverelyAdverse Scenario
}

// Scenarios returns the three scenarios in presentation order.
func (s *Set) Scenarios() []Scenario {
	return []Scenario{s.Baseline, s.Adverse, s.SeverelyAdverse}
}

// Build derives the scenario set from the panel. Baseline is the arithmetic
// mean of each variable over the trailing 12 rows; the stressed scenarios
// apply the fixed deltas and overrides on top. A panel with fewer than 12
// rows cannot support the derivation.
func Build(ctx context.Context, panel *timeseries.Frame) (*Set, error) {
	if panel.Len() < BaselineMonths {
		return nil, errors.NewInsufficientHistoryError(panel.Len(), BaselineMonths)
	}

	slog.InfoContext(ctx, "building stress scenarios",
		"panel_rows", panel.Len(), "baseline_months", BaselineMonths)

	baseline := trailingMeans(panel)

	adverse := clone(baseline)
	adverse[domain.VarUnemploymentRate] += AdverseUnemploymentDelta
	adverse[domain.VarGDPGrowthYoY] += AdverseGDPGrowthDelta
	adverse[domain.VarHPIChangeYoY] = AdverseHPIChangeOverride
	adverse[domain.VarPolicyRate] += AdversePolicyRateDelta

	severe := clone(baseline)
	severe[domain.VarUnemploymentRate] += SevereUnemploymentDelta
	severe[domain.VarGDPGrowthYoY] = SevereGDPGrowthOverride
	severe[domain.VarHPIChangeYoY] = SevereHPIChangeOverride
	severe[domain.VarPolicyRate] += SeverePolicyRateDelta
	severe[domain.VarWTIPrice] = SevereWTIPriceOverride

	variables := make([]string, len(panel.Columns()))
	copy(variables, panel.Columns())

	return &Set{
		Variables:       variables,
		Baseline:        Scenario{Name: domain.ScenarioBaseline, Values: baseline},
		Adverse:         Scenario{Name: domain.ScenarioAdverse, Values: adverse},
		SeverelyAdverse: Scenario{Name: domain.ScenarioSeverelyAdverse, Values: severe},
	}, nil
}

// trailingMeans averages every panel variable over the last BaselineMonths
// rows, skipping NaN gaps. A variable with no usable trailing value averages
// to NaN.
func trailingMeans(panel *timeseries.Frame) map[string]float64 {
	from := panel.Len() - BaselineMonths
	means := make(map[string]float64, len(panel.Columns()))
	for _, name := range panel.Columns() {
		values, _ := panel.Column(name)
		clean := timeseries.NonNaN(values[from:])
		if len(clean) == 0 {
			means[name] = math.NaN()
			continue
		}
		means[name] = stat.Mean(clean, nil)
	}
	return means
}

func clone(values map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}
