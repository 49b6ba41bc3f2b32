package timeseries

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/interp"

	"macropanel/internal/errors"
)

// Method selects how an annual series is spread onto the monthly calendar.
type Method string

const (
	// MethodForwardFill holds each annual value until the next anchor
	MethodForwardFill Method = "forward_fill"
	// MethodLinear interpolates linearly between annual anchors
	MethodLinear Method = "linear"
	// MethodCubic fits a natural cubic spline through the anchors,
	// extended linearly past both ends of the anchor range
	MethodCubic Method = "cubic"
	// MethodConstant is an alias of forward_fill: the annual value is held constant
	MethodConstant Method = "constant"
)

// ParseMethod validates a method name from configuration.
func ParseMethod(name string) (Method, error) {
	switch Method(name) {
	case MethodForwardFill, MethodLinear, MethodCubic, MethodConstant:
		return Method(name), nil
	default:
		return "", errors.NewConfigurationError(
			fmt.Sprintf("unknown interpolation method %q (valid: forward_fill, linear, cubic, constant)", name), nil).
			WithContext("method", name)
	}
}

// AlignAnnual maps an annual series onto the window's month-end calendar.
// Each anchor (the first day of its year in the government extracts) is
// snapped onto the calendar at its own month-end, so the anchor month carries
// the annual source value exactly under every method. Month-ends before the
// first anchor carry NaN under forward_fill/constant; linear and cubic cover
// the whole calendar, clamping respectively extending beyond the anchor range.
func AlignAnnual(s *Series, w Window, method Method) ([]float64, error) {
	anchors := make([]Point, 0, s.Len())
	for _, p := range s.Points() {
		if !math.IsNaN(p.Value) {
			anchors = append(anchors, Point{Time: MonthEnd(p.Time), Value: p.Value})
		}
	}

	ends := w.MonthEnds()
	out := make([]float64, len(ends))
	if len(anchors) == 0 {
		for i := range out {
			out[i] = math.NaN()
		}
		return out, nil
	}

	switch method {
	case MethodForwardFill, MethodConstant:
		fillHeld(anchors, ends, out)
		return out, nil
	case MethodLinear:
		fillLinear(anchors, ends, out)
		return out, nil
	case MethodCubic:
		if err := fillCubic(anchors, ends, out); err != nil {
			return nil, err
		}
		return out, nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unknown interpolation method %q", method), nil).
			WithContext("method", string(method))
	}
}

// fillHeld holds each anchor value until the next anchor. Months before the
// first anchor stay NaN.
func fillHeld(anchors []Point, ends []time.Time, out []float64) {
	j := -1
	for i, end := range ends {
		for j+1 < len(anchors) && !anchors[j+1].Time.After(end) {
			j++
		}
		if j < 0 {
			out[i] = math.NaN()
		} else {
			out[i] = anchors[j].Value
		}
	}
}

// fillLinear interpolates between anchors and clamps to the boundary values
// outside the anchor range.
func fillLinear(anchors []Point, ends []time.Time, out []float64) {
	xs, ys := anchorCoords(anchors)
	for i, end := range ends {
		x := float64(end.Unix())
		switch {
		case x <= xs[0]:
			out[i] = ys[0]
		case x >= xs[len(xs)-1]:
			out[i] = ys[len(ys)-1]
		default:
			k := 0
			for xs[k+1] < x {
				k++
			}
			frac := (x - xs[k]) / (xs[k+1] - xs[k])
			out[i] = ys[k] + frac*(ys[k+1]-ys[k])
		}
	}
}

// fillCubic fits a natural cubic spline through the anchors. Outside the
// anchor range the spline is extended linearly from the boundary using the
// boundary derivative, which is the C2-continuous extension of a natural
// spline (its second derivative vanishes at the ends).
func fillCubic(anchors []Point, ends []time.Time, out []float64) error {
	if len(anchors) < 2 {
		// A spline needs at least two anchors; hold the single value instead.
		fillHeld(anchors, ends, out)
		return nil
	}

	xs, ys := anchorCoords(anchors)
	var spline interp.NaturalCubic
	if err := spline.Fit(xs, ys); err != nil {
		return errors.NewParsingError("fit cubic spline over annual anchors", err)
	}

	lo, hi := xs[0], xs[len(xs)-1]
	for i, end := range ends {
		x := float64(end.Unix())
		switch {
		case x < lo:
			out[i] = spline.Predict(lo) + spline.PredictDerivative(lo)*(x-lo)
		case x > hi:
			out[i] = spline.Predict(hi) + spline.PredictDerivative(hi)*(x-hi)
		default:
			out[i] = spline.Predict(x)
		}
	}
	return nil
}

func anchorCoords(anchors []Point) ([]float64, []float64) {
	xs := make([]float64, len(anchors))
	ys := make([]float64, len(anchors))
	for i, p := range anchors {
		xs[i] = float64(p.Time.Unix())
		ys[i] = p.Value
	}
	return xs, ys
}
