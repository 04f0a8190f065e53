package camprofile

import "github.com/tphakala/go-cam-profile/internal/segment"

// TimeUnitsPerSecond converts waypoint time units to seconds (100 units = 1 s).
const TimeUnitsPerSecond = segment.TimeUnitsPerSecond

// Sampling limits
const (
	DefaultPointsPerSegment = 100               // Samples per segment when unset
	MinPointsPerSegment     = segment.MinPoints // Smaller requests are clamped up
	MaxPointsPerSegment     = 1_000_000         // Upper bound accepted by Validate
)

// DefaultPreviewRows is the number of rows returned by a preview.
const DefaultPreviewRows = 100

// Parameter bounds for Lambda and Blend.
const (
	minShapeParam = 0.0
	maxShapeParam = 1.0
)

// minResamplePoints is the shortest table Resample interpolates.
const minResamplePoints = 2
