package segment

import (
	"github.com/tphakala/go-cam-profile/internal/shaper"
	"github.com/tphakala/go-cam-profile/internal/simdops"
	"gonum.org/v1/gonum/floats"
)

// Grid returns n uniformly spaced values over [0,1], both endpoints
// included exactly. n is clamped to MinPoints.
func Grid(n int) []float64 {
	n = ClampPoints(n)
	u := floats.Span(make([]float64, n), 0, 1)
	u[0], u[n-1] = 0, 1
	return u
}

// ClampPoints enforces the minimum sample count.
func ClampPoints(n int) int {
	if n < MinPoints {
		return MinPoints
	}
	return n
}

// Shape evaluates the normalized position fraction of d over the grid u.
// The result does not depend on where the segment is anchored.
func Shape(d Delta, u []float64) []float64 {
	return shaper.Curve(nil, u, d.Profile, d.Lambda, d.Blend)
}

// Anchor maps a normalized curve onto absolute time and position starting
// at (t0, x0).
func Anchor(d Delta, u, shaped []float64, t0, x0 float64) (t, x []float64) {
	t = make([]float64, len(u))
	x = make([]float64, len(u))
	simdops.Axpb(t, u, d.Seconds(), t0)
	simdops.Axpb(x, shaped, d.DX, x0)
	return t, x
}

// Sample produces n points of segment d starting at (t0, x0): time in
// seconds and position in mm.
func Sample(d Delta, n int, t0, x0 float64) (t, x []float64) {
	u := Grid(n)
	return Anchor(d, u, Shape(d, u), t0, x0)
}
