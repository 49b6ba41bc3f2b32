package timeseries

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macropanel/internal/errors"
)

func annualGDP() *Series {
	return NewSeries("GDP_Ontario", []Point{
		{Time: date(2020, time.January, 1), Value: 800000},
		{Time: date(2021, time.January, 1), Value: 850000},
		{Time: date(2022, time.January, 1), Value: 900000},
		{Time: date(2023, time.January, 1), Value: 920000},
		{Time: date(2024, time.January, 1), Value: 950000},
	})
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Method
		wantErr bool
	}{
		{name: "forward fill", input: "forward_fill", want: MethodForwardFill},
		{name: "linear", input: "linear", want: MethodLinear},
		{name: "cubic", input: "cubic", want: MethodCubic},
		{name: "constant", input: "constant", want: MethodConstant},
		{name: "unknown", input: "quartic", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMethod(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsType(err, errors.ErrTypeConfiguration))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAlignAnnual_ForwardFillIsPiecewiseConstant(t *testing.T) {
	w := testWindow()
	values, err := AlignAnnual(annualGDP(), w, MethodForwardFill)
	require.NoError(t, err)
	require.Len(t, values, 60)

	// 2020: all twelve months hold the 2020 anchor value.
	for i := 0; i < 12; i++ {
		assert.Equal(t, 800000.0, values[i], "month %d", i)
	}
	// 2021 starts the next step.
	assert.Equal(t, 850000.0, values[12])
	assert.Equal(t, 850000.0, values[23])
	// Final year holds through December 2024.
	assert.Equal(t, 950000.0, values[59])
}

func TestAlignAnnual_ConstantMatchesForwardFill(t *testing.T) {
	w := testWindow()
	ff, err := AlignAnnual(annualGDP(), w, MethodForwardFill)
	require.NoError(t, err)
	constant, err := AlignAnnual(annualGDP(), w, MethodConstant)
	require.NoError(t, err)

	assert.Equal(t, ff, constant)
}

func TestAlignAnnual_LinearHitsAnchorsExactly(t *testing.T) {
	w := testWindow()
	values, err := AlignAnnual(annualGDP(), w, MethodLinear)
	require.NoError(t, err)

	// Anchor months (January of each year) carry the annual source value.
	assert.InDelta(t, 800000.0, values[0], 1e-9)
	assert.InDelta(t, 850000.0, values[12], 1e-9)
	assert.InDelta(t, 900000.0, values[24], 1e-9)
	assert.InDelta(t, 920000.0, values[36], 1e-9)
	assert.InDelta(t, 950000.0, values[48], 1e-9)

	// In-between months are strictly between the surrounding anchors.
	for i := 1; i < 12; i++ {
		assert.Greater(t, values[i], 800000.0)
		assert.Less(t, values[i], 850000.0)
	}

	// Past the last anchor the value is clamped to the boundary anchor.
	assert.InDelta(t, 950000.0, values[59], 1e-9)
}

func TestAlignAnnual_CubicHitsAnchorsAndExtrapolates(t *testing.T) {
	w := testWindow()
	values, err := AlignAnnual(annualGDP(), w, MethodCubic)
	require.NoError(t, err)

	// The spline passes through the anchors.
	assert.InDelta(t, 800000.0, values[0], 1e-6)
	assert.InDelta(t, 850000.0, values[12], 1e-6)
	assert.InDelta(t, 950000.0, values[48], 1e-6)

	// Beyond the last anchor the series keeps moving (linear extension of the
	// boundary derivative), it is not clamped.
	for i := 49; i < 60; i++ {
		assert.False(t, math.IsNaN(values[i]), "extrapolated month %d must be defined", i)
	}
	assert.NotEqual(t, values[48], values[59])
}

func TestAlignAnnual_SingleAnchorFallsBackToHold(t *testing.T) {
	s := NewSeries("GDP_Ontario", []Point{
		{Time: date(2022, time.January, 1), Value: 900000},
	})
	w := testWindow()

	values, err := AlignAnnual(s, w, MethodCubic)
	require.NoError(t, err)

	for i := 0; i < 24; i++ {
		assert.True(t, math.IsNaN(values[i]), "months before the only anchor stay NaN")
	}
	assert.Equal(t, 900000.0, values[24])
	assert.Equal(t, 900000.0, values[59])
}

func TestAlignAnnual_EmptySeries(t *testing.T) {
	s := NewSeries("GDP_Ontario", nil)
	values, err := AlignAnnual(s, testWindow(), MethodLinear)
	require.NoError(t, err)

	for _, v := range values {
		assert.True(t, math.IsNaN(v))
	}
}

func TestAlignAnnual_UnknownMethod(t *testing.T) {
	_, err := AlignAnnual(annualGDP(), testWindow(), Method("spline-of-the-day"))

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeConfiguration))
}

func TestFrame_Invariants(t *testing.T) {
	ends := testWindow().MonthEnds()

	f, err := NewFrame(ends)
	require.NoError(t, err)
	require.NoError(t, f.AddColumn("CPI", make([]float64, len(ends))))

	assert.Equal(t, 60, f.Len())
	assert.Error(t, f.AddColumn("CPI", make([]float64, len(ends))), "duplicate column rejected")
	assert.Error(t, f.AddColumn("Short", make([]float64, 3)), "length mismatch rejected")

	_, err = NewFrame([]time.Time{ends[1], ends[0]})
	assert.Error(t, err, "unsorted index rejected")

	_, err = NewFrame([]time.Time{ends[0], ends[0]})
	assert.Error(t, err, "duplicate month rejected")
}
