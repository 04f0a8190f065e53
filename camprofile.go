package camprofile

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-cam-profile/internal/mathutil"
	"github.com/tphakala/go-cam-profile/internal/pipeline"
	"github.com/tphakala/go-cam-profile/internal/segment"
	"github.com/tphakala/go-cam-profile/internal/shaper"
)

// Waypoint is an absolute (time, position) target plus shaping parameters.
// Time is in abstract units (see [TimeUnitsPerSecond]), Position in mm.
type Waypoint = segment.Waypoint

// ProfileKind is the closed enumeration of motion shapes.
type ProfileKind = shaper.Kind

// Supported motion profiles.
const (
	StraightLine      = shaper.StraightLine
	QuadraticParabola = shaper.QuadraticParabola
	QuinticPolynomial = shaper.QuinticPolynomial
	SimpleSinusoid    = shaper.SimpleSinusoid
	ModifiedSinusoid  = shaper.ModifiedSinusoid
)

// TimeOrderError reports a waypoint whose time precedes the previous one.
// It matches [ErrInvalidInput] with errors.Is.
type TimeOrderError = segment.TimeOrderError

// Common errors returned by the generator.
var (
	// ErrInvalidInput indicates waypoints that cannot form a trajectory.
	ErrInvalidInput = segment.ErrInvalidInput

	// ErrUnknownProfile indicates a profile name outside the enumeration.
	ErrUnknownProfile = shaper.ErrUnknownKind

	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// Config holds trajectory generation settings.
type Config struct {
	// PointsPerSegment is the number of samples per segment, endpoints
	// included. Zero selects DefaultPointsPerSegment; values below
	// MinPointsPerSegment are clamped up.
	PointsPerSegment int

	// EnableParallel evaluates segment shapes concurrently. Output is
	// identical to sequential generation.
	EnableParallel bool
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() *Config {
	return &Config{PointsPerSegment: DefaultPointsPerSegment}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.PointsPerSegment > MaxPointsPerSegment {
		return fmt.Errorf("%w: points per segment must not exceed %d", ErrInvalidConfig, MaxPointsPerSegment)
	}
	return nil
}

func (c *Config) pointsPerSegment() int {
	if c.PointsPerSegment == 0 {
		return DefaultPointsPerSegment
	}
	return segment.ClampPoints(c.PointsPerSegment)
}

// Profiles returns the supported profiles in presentation order.
func Profiles() []ProfileKind {
	return shaper.Kinds()
}

// ParseProfile maps a profile name such as "Simple sinus" to its kind.
// Unknown names fail with ErrUnknownProfile; there is no fallback shape.
func ParseProfile(name string) (ProfileKind, error) {
	return shaper.Parse(name)
}

// Generate converts waypoints into a sampled trajectory with velocity,
// acceleration and jerk. A nil config uses DefaultConfig.
//
// An empty waypoint list is not an error: the result is an empty table.
// Waypoints whose time decreases fail with a *TimeOrderError.
func Generate(waypoints []Waypoint, config *Config) (*Table, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if err := ValidateWaypoints(waypoints); err != nil {
		return nil, err
	}

	deltas, err := segment.Convert(waypoints)
	if err != nil {
		return nil, err
	}

	series := pipeline.Stitch(deltas, pipeline.Options{
		PointsPerSegment: config.pointsPerSegment(),
		Parallel:         config.EnableParallel,
	})

	vel, acc, jerk := mathutil.Derivatives(series.X, series.T)

	return newTable(series, vel, acc, jerk, len(deltas)), nil
}

// ValidateWaypoints checks per-waypoint fields: finite time and position,
// Lambda and Blend within [0,1] and a known profile. Time ordering is
// checked during conversion.
func ValidateWaypoints(waypoints []Waypoint) error {
	for i, wp := range waypoints {
		row := i + 1
		if !isFinite(wp.Time) || !isFinite(wp.Position) {
			return fmt.Errorf("%w: row %d: time and position must be finite", ErrInvalidInput, row)
		}
		if !inUnitRange(wp.Lambda) {
			return fmt.Errorf("%w: row %d: lambda %g outside [0, 1]", ErrInvalidInput, row, wp.Lambda)
		}
		if !inUnitRange(wp.Blend) {
			return fmt.Errorf("%w: row %d: C %g outside [0, 1]", ErrInvalidInput, row, wp.Blend)
		}
		if !wp.Profile.Valid() {
			return fmt.Errorf("%w: row %d: %v", ErrUnknownProfile, row, wp.Profile)
		}
	}
	return nil
}

func inUnitRange(v float64) bool {
	return v >= minShapeParam && v <= maxShapeParam
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
