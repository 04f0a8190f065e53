package interp

import "math"

const (
	// Locate needs at least one interval.
	linearInterpolationPoints = 2

	// maxGridSteps keeps the step count, plus the first sample, within int
	// range on every platform.
	maxGridSteps = float64(math.MaxInt32)

	// gridEpsilon absorbs rounding when counting uniform steps, so a span
	// that is an exact multiple of the period keeps its last sample.
	gridEpsilon = 1e-9
)
