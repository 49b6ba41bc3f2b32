package config

// Application constants for the macro panel toolkit.
const (
	AppName    = "macropanel"
	AppVersion = "1.0.0"

	// envPrefix is the prefix for all environment configuration variables
	envPrefix = "MACRO"

	// Output file names, written into Paths.OutputDir
	ConsolidatedCSV  = "macro_data_consolidated.csv"
	ScenariosCSV     = "stress_test_scenarios.csv"
	DictionaryCSV    = "macro_data_dictionary.csv"
	QualityReportTXT = "data_quality_report.txt"

	// Synthetic sample output file names (date-stamped at write time)
	LoansCSVPrefix    = "loans_"
	PaymentsCSVPrefix = "payment_history_"
)
