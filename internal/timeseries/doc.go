// Package timeseries provides the calendar and frequency-alignment primitives
// shared by every series loader and by the consolidator.
//
// # Architecture
//
// The package is organized around three ideas:
//
// 1. Series: a single named variable at its native frequency (daily, weekly,
// monthly or annual), sorted and deduplicated at construction
// 2. Window: the configured date range, which defines the canonical month-end
// calendar every series is aligned onto
// 3. Frame: an ordered monthly table of aligned columns, the building block of
// the consolidated panel
//
// # Alignment Rules
//
// Sub-monthly observations are averaged within each calendar month. Annual
// observations are spread onto the monthly calendar via a configurable method
// (forward_fill, linear, cubic, constant); the cubic method fits a natural
// spline through the annual anchors and extends it linearly past both ends.
//
// Gaps are always explicit: a month with no usable observation carries NaN,
// never a silently skipped row.
package timeseries
