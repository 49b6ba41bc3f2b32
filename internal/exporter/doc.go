// Package exporter writes the run outputs: the consolidated panel CSV, the
// stress scenario CSV, the data dictionary CSV and the plain-text quality
// report. It is a thin formatting layer; all numbers come in already
// computed and gaps are rendered as empty cells.
package exporter
