package shaper

// Logistic warp parameters.
const (
	// Center shift tolerance: lambda within this distance of 0.5 is the identity warp.
	centerTolerance = 1e-9
	centerNeutral   = 0.5

	// Steepness k = steepnessBase + steepnessPerBlend*C.
	steepnessBase     = 2.0
	steepnessPerBlend = 8.0

	// Guard added to renormalization denominators.
	epsilon = 1e-12
)

// Base shape parameters.
const (
	halfPoint = 0.5

	// Modified sinusoid exponent p = 1 + powerPerBlend*C.
	powerPerBlend = 9.0

	// Quintic smoothstep coefficients: 10w³ - 15w⁴ + 6w⁵.
	quinticCoeff3 = 10.0
	quinticCoeff4 = 15.0
	quinticCoeff5 = 6.0
)
