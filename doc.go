// Package camprofile generates continuous cam motion trajectories from
// sparse absolute waypoints.
//
// Each waypoint gives an absolute target time and position plus two shaping
// parameters and a motion profile. The generator turns consecutive
// waypoints into segments, shapes and samples every segment, stitches the
// samples into one continuous series and differentiates it to obtain
// velocity, acceleration and jerk.
//
// # Quick Start
//
//	table, err := camprofile.Generate([]camprofile.Waypoint{
//	    {Time: 100, Position: 10, Lambda: 0.5, Blend: 1, Profile: camprofile.SimpleSinusoid},
//	    {Time: 250, Position: 10, Lambda: 0.5, Blend: 0, Profile: camprofile.StraightLine},
//	}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := table.WriteCSV(os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// # Units
//
// Waypoint times are abstract units where 100 units equal one second
// ([TimeUnitsPerSecond]). Positions are millimeters. Output columns are
// seconds, mm, mm/s, mm/s² and mm/s³.
//
// # Shaping
//
// Within a segment the normalized parameter u ∈ [0,1] is first warped by a
// renormalized logistic centered at Lambda (0.5 disables the warp). The
// warped value w feeds one of the profiles:
//
//   - [StraightLine]: f(w) = w
//   - [QuadraticParabola]: 2w² below w=0.5, 1-2(1-w)² above
//   - [QuinticPolynomial]: 10w³ - 15w⁴ + 6w⁵
//   - [SimpleSinusoid]: 0.5 - 0.5·cos(πw)
//   - [ModifiedSinusoid]: the simple sinusoid raised to 1+9C, renormalized
//     over the segment's sample grid
//
// The result is blended as (1-C)·w + C·f(w). Every profile starts at 0 and
// ends at 1, so positions are continuous across segments.
//
// # Derivatives
//
// Velocity, acceleration and jerk are numerical gradients of the whole
// stitched series, not of individual segments. Only time and position are
// continuous at segment boundaries; curvature changes there show up as
// spikes in acceleration and jerk.
//
// # Fixed-Period Tables
//
// Motion controllers usually consume cam tables at a fixed servo period.
// [Table.Resample] interpolates the trajectory onto such a grid, with cubic
// Hermite interpolation using the computed velocities or plain linear
// interpolation, and recomputes the derivatives:
//
//	servo, err := table.Resample(0.001, camprofile.InterpolationCubic)
//
// # Errors
//
// Waypoints with decreasing time fail with a [*TimeOrderError] matching
// [ErrInvalidInput]. Unknown profile names fail with [ErrUnknownProfile].
// An empty waypoint list yields an empty [Table], not an error.
//
// # Thread Safety
//
// [Generate] has no shared state and may be called concurrently. A [Table]
// is immutable once returned.
package camprofile
