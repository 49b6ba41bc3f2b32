package consolidate

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"macropanel/internal/errors"
	"macropanel/internal/timeseries"
	"macropanel/pkg/contracts/domain"
)

// Composite indicator weights. These are design constants carried over from
// the model documentation, not fitted values.
const (
	CreditPrimeWeight    = 0.4
	CreditMortgageWeight = 0.4
	CreditSpreadWeight   = 0.2

	HousingHPIWeight          = -0.5
	HousingMortgageWeight     = 0.3
	HousingUnemploymentWeight = 0.2
)

// addIndicators appends the three composite risk indicators to the panel.
// Every required input column must be present; a missing one is a hard
// MISSING_VARIABLE failure rather than a silently partial composite.
func addIndicators(panel *timeseries.Frame) error {
	if err := addEconomicCycleScore(panel); err != nil {
		return err
	}
	if err := addCreditConditions(panel); err != nil {
		return err
	}
	return addHousingRiskScore(panel)
}

// addEconomicCycleScore computes ((-1)*z(unemployment) + z(GDP growth)) / 2,
// with z-scores taken over the full panel history.
func addEconomicCycleScore(panel *timeseries.Frame) error {
	unemployment, err := requireColumn(panel, domain.VarUnemploymentRate)
	if err != nil {
		return err
	}
	growth, err := requireColumn(panel, domain.VarGDPGrowthYoY)
	if err != nil {
		return err
	}

	zUnemployment := zScores(unemployment)
	zGrowth := zScores(growth)
	score := make([]float64, panel.Len())
	for i := range score {
		score[i] = (-zUnemployment[i] + zGrowth[i]) / 2
	}
	return panel.AddColumn(domain.VarEconomicCycleScore, score)
}

func addCreditConditions(panel *timeseries.Frame) error {
	return addWeightedSum(panel, domain.VarCreditConditions, []weightedInput{
		{domain.VarPrimeRate, CreditPrimeWeight},
		{domain.VarMortgage5YRate, CreditMortgageWeight},
		{domain.VarPrimePolicySpread, CreditSpreadWeight},
	})
}

func addHousingRiskScore(panel *timeseries.Frame) error {
	return addWeightedSum(panel, domain.VarHousingRiskScore, []weightedInput{
		{domain.VarHPIChangeYoY, HousingHPIWeight},
		{domain.VarMortgage5YRate, HousingMortgageWeight},
		{domain.VarUnemploymentRate, HousingUnemploymentWeight},
	})
}

type weightedInput struct {
	variable string
	weight   float64
}

func addWeightedSum(panel *timeseries.Frame, name string, inputs []weightedInput) error {
	columns := make([][]float64, len(inputs))
	for i, in := range inputs {
		col, err := requireColumn(panel, in.variable)
		if err != nil {
			return err
		}
		columns[i] = col
	}

	values := make([]float64, panel.Len())
	for row := range values {
		sum := 0.0
		for i, in := range inputs {
			sum += in.weight * columns[i][row]
		}
		values[row] = sum
	}
	return panel.AddColumn(name, values)
}

func requireColumn(panel *timeseries.Frame, name string) ([]float64, error) {
	col, ok := panel.Column(name)
	if !ok {
		return nil, errors.NewMissingVariableError(name)
	}
	return col, nil
}

// zScores standardizes a column against its full-history mean and standard
// deviation, skipping NaN gaps. A degenerate column (no spread or fewer than
// two observations) standardizes to NaN.
func zScores(values []float64) []float64 {
	clean := timeseries.NonNaN(values)
	out := make([]float64, len(values))
	if len(clean) < 2 {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}

	mean := stat.Mean(clean, nil)
	std := stat.StdDev(clean, nil)
	for i, v := range values {
		if math.IsNaN(v) || std == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = (v - mean) / std
	}
	return out
}
