// Package interp resamples non-uniformly sampled trajectories onto a
// uniform time grid.
package interp

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Method selects the interpolation polynomial.
type Method int

const (
	// Cubic is cubic Hermite interpolation using the sampled slopes.
	// Intervals whose end slopes are not finite fall back to Linear.
	Cubic Method = iota
	// Linear is 2-point, 1st order interpolation.
	Linear
)

var methodNames = [...]string{Cubic: "cubic", Linear: "linear"}

// ErrUnknownMethod is returned by ParseMethod for unrecognized names.
var ErrUnknownMethod = errors.New("unknown interpolation method")

func (m Method) String() string {
	if m >= 0 && int(m) < len(methodNames) {
		return methodNames[m]
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod maps "cubic" or "linear" (case-insensitive) to a Method.
func ParseMethod(name string) (Method, error) {
	for m, n := range methodNames {
		if strings.EqualFold(name, n) {
			return Method(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Grid returns times t0, t0+period, ... up to and including t1 when t1 is
// a whole number of periods away. It returns nil for a non-positive
// period, t1 < t0, or a grid too long to allocate; check GridLen first.
func Grid(t0, t1, period float64) []float64 {
	n := GridLen(t0, t1, period)
	if n == 0 || n == math.MaxInt {
		return nil
	}
	g := make([]float64, n)
	for i := range g {
		g[i] = t0 + float64(i)*period
	}
	return g
}

// GridLen returns len(Grid(t0, t1, period)) without allocating. Counts
// that do not fit in an int saturate at math.MaxInt.
func GridLen(t0, t1, period float64) int {
	if !(period > 0) || !(t1 >= t0) {
		return 0
	}
	steps := math.Floor((t1-t0)/period + gridEpsilon)
	if !(steps < maxGridSteps) {
		return math.MaxInt
	}
	return int(steps) + 1
}

// Locate finds for every query time tq[i] the interval index j such that
// t[j] <= tq[i] <= t[j+1], taking the last such j when t repeats.
// Both tq and t must be non-decreasing and t must hold at least two
// samples. Queries outside [t[0], t[len(t)-1]] clamp to the end intervals.
func Locate(dst []int, tq, t []float64) []int {
	if len(t) < linearInterpolationPoints {
		panic("interp: need at least two samples")
	}
	if dst == nil {
		dst = make([]int, len(tq))
	}

	last := len(t) - 2
	j := 0
	for i, q := range tq {
		for j < last && t[j+1] <= q {
			j++
		}
		dst[i] = j
	}
	return dst
}

// LinearAt writes into dst the linear interpolation of (t, x) at tq.
// idx comes from Locate.
func LinearAt(dst, tq, t, x []float64, idx []int) []float64 {
	if dst == nil {
		dst = make([]float64, len(tq))
	}
	for i, q := range tq {
		j := idx[i]
		dst[i] = linear(q, t[j], t[j+1], x[j], x[j+1])
	}
	return dst
}

// HermiteAt writes into dst the cubic Hermite interpolation of (t, x) with
// slopes v at tq. idx comes from Locate.
func HermiteAt(dst, tq, t, x, v []float64, idx []int) []float64 {
	if dst == nil {
		dst = make([]float64, len(tq))
	}
	for i, q := range tq {
		j := idx[i]
		h := t[j+1] - t[j]
		if h <= 0 || !isFinite(v[j]) || !isFinite(v[j+1]) {
			dst[i] = linear(q, t[j], t[j+1], x[j], x[j+1])
			continue
		}

		s := (q - t[j]) / h
		s2 := s * s
		s3 := s2 * s

		h00 := 2*s3 - 3*s2 + 1
		h10 := s3 - 2*s2 + s
		h01 := -2*s3 + 3*s2
		h11 := s3 - s2

		dst[i] = h00*x[j] + h10*h*v[j] + h01*x[j+1] + h11*h*v[j+1]
	}
	return dst
}

// At interpolates with method m. Slopes v are ignored by Linear.
func At(m Method, tq, t, x, v []float64, idx []int) []float64 {
	if m == Linear {
		return LinearAt(nil, tq, t, x, idx)
	}
	return HermiteAt(nil, tq, t, x, v, idx)
}

// linear returns the value at q on the line through (t0, x0) and (t1, x1).
// A zero-length interval yields x1.
func linear(q, t0, t1, x0, x1 float64) float64 {
	h := t1 - t0
	if h <= 0 {
		return x1
	}
	s := (q - t0) / h
	return (1-s)*x0 + s*x1
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
