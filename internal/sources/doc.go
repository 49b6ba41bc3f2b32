// Package sources adapts raw tabular extracts into decoded tables the series
// loaders can consume. It owns the format-specific concerns: header skip
// offsets, label-row lookup, lenient numeric coercion and file discovery.
//
// The package deliberately knows nothing about macroeconomic semantics; it
// hands each loader a Table of trimmed string cells and lets the loader decide
// which rows and columns matter.
package sources
