package timeseries

import (
	"math"
	"sort"
	"time"
)

// Point is a single timestamped observation. NaN marks a value that could not
// be coerced to a number.
type Point struct {
	Time  time.Time
	Value float64
}

// Series is a single named variable at its native frequency. The observation
// list is sorted and deduplicated at construction and never mutated afterwards.
type Series struct {
	Name   string
	points []Point
}

// NewSeries creates a series from unordered observations. Observations are
// sorted by timestamp; when two observations share a timestamp the later one
// in the input wins, matching last-write semantics of the raw extracts.
func NewSeries(name string, points []Point) *Series {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time.Before(sorted[j].Time)
	})

	deduped := sorted[:0]
	for _, p := range sorted {
		if n := len(deduped); n > 0 && deduped[n-1].Time.Equal(p.Time) {
			deduped[n-1] = p
			continue
		}
		deduped = append(deduped, p)
	}

	return &Series{Name: name, points: deduped}
}

// Len returns the number of observations.
func (s *Series) Len() int { return len(s.points) }

// Points returns the sorted observations.
func (s *Series) Points() []Point { return s.points }

// ResampleMonthly aligns a daily/weekly series onto the window's month-end
// calendar by taking the arithmetic mean of the native observations inside
// each calendar month. Months without a usable observation carry NaN.
func ResampleMonthly(s *Series, w Window) []float64 {
	type acc struct {
		sum float64
		n   int
	}
	byMonth := make(map[time.Time]*acc)
	for _, p := range s.points {
		if math.IsNaN(p.Value) {
			continue
		}
		key := MonthEnd(p.Time)
		a := byMonth[key]
		if a == nil {
			a = &acc{}
			byMonth[key] = a
		}
		a.sum += p.Value
		a.n++
	}

	ends := w.MonthEnds()
	out := make([]float64, len(ends))
	for i, end := range ends {
		if a, ok := byMonth[end]; ok && a.n > 0 {
			out[i] = a.sum / float64(a.n)
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

// PctChange returns the percentage change over the given number of periods:
// (v[t]/v[t-periods] - 1) * 100. The first `periods` entries are NaN, as is
// any entry whose current or reference value is NaN.
func PctChange(values []float64, periods int) []float64 {
	out := make([]float64, len(values))
	for i := range values {
		if i < periods {
			out[i] = math.NaN()
			continue
		}
		cur, ref := values[i], values[i-periods]
		if math.IsNaN(cur) || math.IsNaN(ref) {
			out[i] = math.NaN()
			continue
		}
		out[i] = (cur/ref - 1) * 100
	}
	return out
}

// Spread returns the elementwise difference a-b. NaN in either operand
// propagates.
func Spread(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

// ForwardFill replaces every NaN with the most recent preceding value.
// Leading NaNs, before any value exists, are left in place.
func ForwardFill(values []float64) []float64 {
	out := make([]float64, len(values))
	last := math.NaN()
	for i, v := range values {
		if !math.IsNaN(v) {
			last = v
		}
		out[i] = last
	}
	return out
}

// NonNaN returns the values with NaN entries removed.
func NonNaN(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
