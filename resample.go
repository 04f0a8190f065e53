package camprofile

import (
	"fmt"
	"math"

	"github.com/tphakala/go-cam-profile/internal/interp"
	"github.com/tphakala/go-cam-profile/internal/mathutil"
	"github.com/tphakala/go-cam-profile/internal/pipeline"
)

// Interpolation selects how Resample evaluates positions between samples.
type Interpolation = interp.Method

// Interpolation methods.
const (
	// InterpolationCubic uses cubic Hermite interpolation with the table's
	// velocities as slopes.
	InterpolationCubic = interp.Cubic
	// InterpolationLinear interpolates positions linearly.
	InterpolationLinear = interp.Linear
)

// MaxResampledPoints bounds the size of a resampled table.
const MaxResampledPoints = 10_000_000

// ParseInterpolation maps "cubic" or "linear" to an Interpolation.
func ParseInterpolation(name string) (Interpolation, error) {
	m, err := interp.ParseMethod(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return m, nil
}

// Resample returns the trajectory sampled at a fixed period in seconds,
// starting at the first sample, as a motion controller consumes a cam
// table. Velocity, acceleration and jerk are recomputed on the uniform
// grid. Each resampled row keeps the segment of the interval it falls in.
//
// An empty or single-row table yields a copy of itself.
func (tb *Table) Resample(period float64, method Interpolation) (*Table, error) {
	if !(period > 0) || math.IsInf(period, 0) {
		return nil, fmt.Errorf("%w: resample period must be positive and finite, got %g", ErrInvalidConfig, period)
	}
	if method != InterpolationCubic && method != InterpolationLinear {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, method)
	}

	n := tb.Len()
	if n < minResamplePoints {
		return tb.clone(), nil
	}

	t0, t1 := tb.t[0], tb.t[n-1]
	if interp.GridLen(t0, t1, period) > MaxResampledPoints {
		return nil, fmt.Errorf("%w: period %g s yields more than %d points", ErrInvalidConfig, period, MaxResampledPoints)
	}

	tq := interp.Grid(t0, t1, period)
	idx := interp.Locate(nil, tq, tb.t)
	x := interp.At(method, tq, tb.t, tb.pos, tb.vel, idx)

	seg := make([]int, len(tq))
	for i, q := range tq {
		j := idx[i]
		if q > tb.t[j] {
			j++
		}
		seg[i] = tb.segment[j]
	}

	vel, acc, jerk := mathutil.Derivatives(x, tq)
	series := &pipeline.Series{T: tq, X: x, Segment: seg}
	return newTable(series, vel, acc, jerk, tb.segments), nil
}

func (tb *Table) clone() *Table {
	return newTable(
		&pipeline.Series{T: tb.Time(), X: tb.Position(), Segment: tb.SegmentIDs()},
		tb.Velocity(), tb.Acceleration(), tb.Jerk(), tb.segments,
	)
}
