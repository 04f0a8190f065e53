// Package shaper maps a normalized segment parameter u ∈ [0,1] to a
// normalized position fraction in [0,1].
//
// Evaluation happens in three steps:
//
//  1. Center shift: a renormalized logistic warp w(u) controlled by lambda.
//     lambda = 0.5 is the identity.
//  2. Base shape f(w), selected by [Kind].
//  3. Blend: (1-C)·w + C·f(w).
//
// Both endpoints are preserved: the result is 0 at u=0 and 1 at u=1
// (up to the 1e-12 renormalization guard).
package shaper

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Curve evaluates the shaped profile over the grid u and writes the result
// into dst, which is returned. If dst is nil a new slice is allocated.
//
// The grid form is required because [ModifiedSinusoid] renormalizes against
// the minimum and maximum of the whole grid, not point by point.
func Curve(dst, u []float64, kind Kind, lambda, blend float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(u))
	}
	if len(dst) != len(u) {
		panic("shaper: slice length mismatch")
	}
	if len(u) == 0 {
		return dst
	}

	w := Warp(make([]float64, len(u)), u, lambda, blend)
	Base(dst, w, kind, blend)

	for i := range dst {
		dst[i] = (1-blend)*w[i] + blend*dst[i]
	}
	return dst
}

// Warp applies the center shift to u and writes the warped variable into dst.
// The warp is the identity when lambda is within tolerance of 0.5.
func Warp(dst, u []float64, lambda, blend float64) []float64 {
	if math.Abs(lambda-centerNeutral) < centerTolerance {
		copy(dst, u)
		return dst
	}

	k := steepnessBase + steepnessPerBlend*blend
	g0 := sigmoid(k * (0 - lambda))
	g1 := sigmoid(k * (1 - lambda))
	span := g1 - g0 + epsilon

	for i, v := range u {
		dst[i] = (sigmoid(k*(v-lambda)) - g0) / span
	}
	return dst
}

// Base evaluates the un-blended shape f(w) over the grid w into dst.
func Base(dst, w []float64, kind Kind, blend float64) []float64 {
	switch kind {
	case StraightLine:
		copy(dst, w)

	case QuadraticParabola:
		for i, v := range w {
			if v < halfPoint {
				dst[i] = 2 * v * v
			} else {
				r := 1 - v
				dst[i] = 1 - 2*r*r
			}
		}

	case QuinticPolynomial:
		for i, v := range w {
			v3 := v * v * v
			dst[i] = v3 * (quinticCoeff3 - quinticCoeff4*v + quinticCoeff5*v*v)
		}

	case SimpleSinusoid:
		for i, v := range w {
			dst[i] = halfSine(v)
		}

	case ModifiedSinusoid:
		p := 1 + powerPerBlend*blend
		for i, v := range w {
			dst[i] = math.Pow(halfSine(v), p)
		}
		minVal, maxVal := floats.Min(dst), floats.Max(dst)
		span := maxVal - minVal + epsilon
		for i := range dst {
			dst[i] = (dst[i] - minVal) / span
		}

	default:
		panic(fmt.Sprintf("shaper: unsupported kind %v", kind))
	}
	return dst
}

func halfSine(w float64) float64 {
	return halfPoint - halfPoint*math.Cos(math.Pi*w)
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
