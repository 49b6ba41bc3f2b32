package timeseries

import (
	"fmt"
	"time"
)

// Frame is an ordered monthly table: a strictly increasing month index plus
// columns of aligned values. Column order is insertion order, which the
// consolidator relies on for the output layout.
type Frame struct {
	index   []time.Time
	columns []string
	data    map[string][]float64
}

// NewFrame creates a frame over the given index. The index must be strictly
// increasing with no duplicate months.
func NewFrame(index []time.Time) (*Frame, error) {
	for i := 1; i < len(index); i++ {
		if !index[i-1].Before(index[i]) {
			return nil, fmt.Errorf("frame index must be strictly increasing: %s followed by %s",
				index[i-1].Format("2006-01-02"), index[i].Format("2006-01-02"))
		}
	}
	idx := make([]time.Time, len(index))
	copy(idx, index)
	return &Frame{index: idx, data: make(map[string][]float64)}, nil
}

// AddColumn appends a named column. The value slice must match the index
// length and the name must be new.
func (f *Frame) AddColumn(name string, values []float64) error {
	if len(values) != len(f.index) {
		return fmt.Errorf("column %s has %d values, frame index has %d rows", name, len(values), len(f.index))
	}
	if _, exists := f.data[name]; exists {
		return fmt.Errorf("column %s already present", name)
	}
	col := make([]float64, len(values))
	copy(col, values)
	f.columns = append(f.columns, name)
	f.data[name] = col
	return nil
}

// Len returns the number of rows.
func (f *Frame) Len() int { return len(f.index) }

// Index returns the month index.
func (f *Frame) Index() []time.Time { return f.index }

// Columns returns the column names in insertion order.
func (f *Frame) Columns() []string { return f.columns }

// Column returns the values of a named column.
func (f *Frame) Column(name string) ([]float64, bool) {
	col, ok := f.data[name]
	return col, ok
}

// HasColumn reports whether the named column is present.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.data[name]
	return ok
}
