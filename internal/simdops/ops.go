// Package simdops exposes the vector kernels used by the trajectory
// pipeline, delegating to SIMD-accelerated implementations when the CPU
// supports them.
package simdops

import (
	"github.com/tphakala/simd/cpu"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"
)

// Ops groups the float64 kernels as function values so callers and tests
// can swap implementations.
type Ops struct {
	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)

	// Sum returns the sum of all elements.
	Sum func(a []float64) float64

	// DotProduct returns Σ a[i]*b[i].
	DotProduct func(a, b []float64) float64
}

var ops64 = Ops{
	Scale:      f64.Scale,
	Sum:        f64.Sum,
	DotProduct: f64.DotProduct,
}

// Float64Ops returns the float64 SIMD operations.
func Float64Ops() *Ops {
	return &ops64
}

// Axpb writes dst[i] = a[i]*s + b. It is the affine map used to anchor a
// normalized curve at a segment start.
func Axpb(dst, a []float64, s, b float64) {
	ops64.Scale(dst, a, s)
	if b != 0 {
		floats.AddConst(b, dst)
	}
}

// Info describes the SIMD instruction set in use.
func Info() string {
	return cpu.Info()
}
