// Package loaders turns each raw macroeconomic extract into an aligned
// monthly frame with its derived rate columns.
//
// # Architecture
//
// Every loader is a pure function over one raw source: it reads the decoded
// table through internal/sources, aligns the native-frequency observations
// onto the configured window's month-end calendar through internal/timeseries,
// and appends the derived columns (year-over-year and month-over-month
// percentage changes, rate spreads).
//
// Loaders never depend on each other and share no mutable state, so the
// pipeline is free to run them concurrently. Each fails with a DATA_FORMAT
// error when an expected label or column is absent from its source; individual
// malformed cells coerce to NaN instead.
//
// # Sources
//
// CPI, labour force and GDP come from Statistics Canada extracts with
// source-specific header skip offsets and label-row conventions. The three
// interest rates and the USD/CAD rate come from Bank of Canada valet CSVs.
// The housing price index ships as a CREA workbook and the oil prices as a
// typed long-format extract; both carry publication stamps in their file
// names and are located by glob.
package loaders
