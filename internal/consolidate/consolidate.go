// Package consolidate assembles the aligned loader frames into the single
// monthly macro panel and appends the composite risk indicators. The
// consolidator owns panel construction; everything downstream (scenario
// builder, exporters) only reads the result.
package consolidate

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"macropanel/internal/timeseries"
)

// Consolidate joins the loader frames column-wise on the union of their month
// indices, forward-fills residual gaps per column (gaps before a source's
// first value stay NaN) and computes the composite indicators.
func Consolidate(ctx context.Context, frames []*timeseries.Frame) (*timeseries.Frame, error) {
	index := unionIndex(frames)
	slog.InfoContext(ctx, "consolidating panel",
		"frames", len(frames), "months", len(index))

	panel, err := timeseries.NewFrame(index)
	if err != nil {
		return nil, err
	}

	position := make(map[time.Time]int, len(index))
	for i, t := range index {
		position[t] = i
	}

	for _, frame := range frames {
		frameIndex := frame.Index()
		for _, name := range frame.Columns() {
			source, _ := frame.Column(name)
			aligned := make([]float64, len(index))
			for i := range aligned {
				aligned[i] = math.NaN()
			}
			for i, t := range frameIndex {
				aligned[position[t]] = source[i]
			}
			if err := panel.AddColumn(name, timeseries.ForwardFill(aligned)); err != nil {
				return nil, err
			}
		}
	}

	if err := addIndicators(panel); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "panel consolidated",
		"months", panel.Len(), "variables", len(panel.Columns()))
	return panel, nil
}

// unionIndex merges the frame indices into one sorted, deduplicated calendar.
func unionIndex(frames []*timeseries.Frame) []time.Time {
	seen := make(map[time.Time]bool)
	var index []time.Time
	for _, frame := range frames {
		for _, t := range frame.Index() {
			if !seen[t] {
				seen[t] = true
				index = append(index, t)
			}
		}
	}
	sort.Slice(index, func(i, j int) bool { return index[i].Before(index[j]) })
	return index
}
