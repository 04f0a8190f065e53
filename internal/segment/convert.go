// Package segment converts absolute waypoints to per-segment deltas and
// samples individual segments.
package segment

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-cam-profile/internal/shaper"
)

// ErrInvalidInput indicates waypoints that cannot form a trajectory.
var ErrInvalidInput = errors.New("invalid input")

// Waypoint is an absolute motion target authored by the user.
type Waypoint struct {
	// Time is the absolute target time in abstract units (100 units = 1 s).
	Time float64

	// Position is the absolute target position in mm.
	Position float64

	// Lambda shifts the motion center within the segment, in [0,1].
	// 0.5 means no shift.
	Lambda float64

	// Blend (C) interpolates between linear motion (0) and the full shape (1).
	Blend float64

	// Profile selects the base motion shape.
	Profile shaper.Kind
}

// Delta describes one segment relative to the end of the previous one.
type Delta struct {
	DT      float64 // Duration in abstract time units, >= 0
	DX      float64 // Position span in mm
	Lambda  float64
	Blend   float64
	Profile shaper.Kind
}

// Seconds returns the segment duration in seconds.
func (d Delta) Seconds() float64 {
	return d.DT / TimeUnitsPerSecond
}

// TimeOrderError reports a waypoint whose absolute time precedes the
// previous waypoint.
type TimeOrderError struct {
	Row      int // 1-based waypoint row
	Time     float64
	PrevTime float64
}

func (e *TimeOrderError) Error() string {
	return fmt.Sprintf("time must be non-decreasing in row %d (got %g < %g)", e.Row, e.Time, e.PrevTime)
}

// Unwrap makes the error match ErrInvalidInput.
func (e *TimeOrderError) Unwrap() error {
	return ErrInvalidInput
}

// Convert turns absolute waypoints into per-segment deltas. The first delta
// is measured from the origin (time 0, position 0). Equal consecutive times
// yield zero-duration segments; decreasing times fail with a *TimeOrderError.
func Convert(waypoints []Waypoint) ([]Delta, error) {
	deltas := make([]Delta, 0, len(waypoints))

	var prevTime, prevPos float64
	for i, wp := range waypoints {
		if wp.Time < prevTime {
			return nil, &TimeOrderError{Row: i + 1, Time: wp.Time, PrevTime: prevTime}
		}

		deltas = append(deltas, Delta{
			DT:      wp.Time - prevTime,
			DX:      wp.Position - prevPos,
			Lambda:  wp.Lambda,
			Blend:   wp.Blend,
			Profile: wp.Profile,
		})

		prevTime = wp.Time
		prevPos = wp.Position
	}

	return deltas, nil
}
