package main

// Path that selects stdin or stdout.
const stdioPath = "-"

// Preview table layout
const tabPadding = 2

// Demo move parameters
const (
	demoMoveTime     = 100.0 // 1 s
	demoMoveDistance = 10.0  // mm
	demoLambda       = 0.5
)

// Center shifts compared in the demo
var demoLambdas = []float64{0.2, 0.35, 0.5, 0.65, 0.8}
