// Package domain holds the shared vocabulary of the macro panel: canonical
// variable names, scenario names and the key-variable list used in reporting.
// Loaders, the consolidator, the scenario builder and the exporters all speak
// these names; nothing else in the repo spells a column name as a literal.
package domain

// Panel variable names, in the order the loaders contribute them.
const (
	VarCPI          = "CPI"
	VarInflationYoY = "Inflation_YoY"

	VarUnemploymentRate = "Unemployment_Rate"
	VarEmploymentRate   = "Employment_Rate"

	VarGDPOntario   = "GDP_Ontario"
	VarGDPGrowthYoY = "GDP_Growth_YoY"

	VarPolicyRate          = "Policy_Rate"
	VarPrimeRate           = "Prime_Rate"
	VarMortgage5YRate      = "Mortgage_5Y_Rate"
	VarPrimePolicySpread   = "Prime_Policy_Spread"
	VarMortgagePrimeSpread = "Mortgage_Prime_Spread"

	VarUSDCAD      = "USD_CAD"
	VarFXChangeMoM = "FX_Change_MoM"
	VarFXChangeYoY = "FX_Change_YoY"

	VarHPI          = "HPI"
	VarHPIChangeMoM = "HPI_Change_MoM"
	VarHPIChangeYoY = "HPI_Change_YoY"

	VarWTIPrice     = "WTI_Price"
	VarWCSPrice     = "WCS_Price"
	VarWCSWTISpread = "WCS_WTI_Spread"
	VarWTIChangeYoY = "WTI_Change_YoY"

	// Composite indicators, appended by the consolidator
	VarEconomicCycleScore = "Economic_Cycle_Score"
	VarCreditConditions   = "Credit_Conditions"
	VarHousingRiskScore   = "Housing_Risk_Score"
)

// Scenario names, in their fixed presentation order.
const (
	ScenarioBaseline        = "Baseline"
	ScenarioAdverse         = "Adverse"
	ScenarioSeverelyAdverse = "Severely_Adverse"
)

// KeyVariables are the five variables the data quality report summarizes.
var KeyVariables = []string{
	VarUnemploymentRate,
	VarInflationYoY,
	VarGDPGrowthYoY,
	VarPolicyRate,
	VarHPIChangeYoY,
}
