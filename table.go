package camprofile

import (
	"encoding/json"
	"math"
	"slices"

	"github.com/tphakala/go-cam-profile/internal/pipeline"
	"github.com/tphakala/go-cam-profile/internal/simdops"
)

// Column names, in table order.
const (
	ColumnIndex        = "Index"
	ColumnSegment      = "Segment"
	ColumnTime         = "t [s]"
	ColumnPosition     = "pos [mm]"
	ColumnVelocity     = "vel [mm/s]"
	ColumnAcceleration = "acc [mm/s^2]"
	ColumnJerk         = "jerk [mm/s^3]"
)

// Columns returns the column names in table order.
func Columns() []string {
	return []string{
		ColumnIndex, ColumnSegment, ColumnTime, ColumnPosition,
		ColumnVelocity, ColumnAcceleration, ColumnJerk,
	}
}

// TrajectoryPoint is one row of a generated trajectory.
type TrajectoryPoint struct {
	Index   int     // 1-based row number
	Segment int     // 1-based segment the sample belongs to
	T       float64 // Time in s
	Pos     float64 // Position in mm
	Vel     float64 // Velocity in mm/s
	Acc     float64 // Acceleration in mm/s²
	Jerk    float64 // Jerk in mm/s³
}

type pointJSON struct {
	Index   int      `json:"Index"`
	Segment int      `json:"Segment"`
	T       *float64 `json:"t [s]"`
	Pos     *float64 `json:"pos [mm]"`
	Vel     *float64 `json:"vel [mm/s]"`
	Acc     *float64 `json:"acc [mm/s^2]"`
	Jerk    *float64 `json:"jerk [mm/s^3]"`
}

// MarshalJSON encodes the point keyed by column name. Non-finite values,
// which occur around zero-duration segments, are encoded as null.
func (p TrajectoryPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(pointJSON{
		Index:   p.Index,
		Segment: p.Segment,
		T:       finiteOrNil(p.T),
		Pos:     finiteOrNil(p.Pos),
		Vel:     finiteOrNil(p.Vel),
		Acc:     finiteOrNil(p.Acc),
		Jerk:    finiteOrNil(p.Jerk),
	})
}

func finiteOrNil(v float64) *float64 {
	if !isFinite(v) {
		return nil
	}
	return &v
}

// Table is an immutable generated trajectory stored column-wise.
// Accessors return copies.
type Table struct {
	segment  []int
	t        []float64
	pos      []float64
	vel      []float64
	acc      []float64
	jerk     []float64
	segments int
}

func newTable(s *pipeline.Series, vel, acc, jerk []float64, segments int) *Table {
	return &Table{
		segment:  s.Segment,
		t:        s.T,
		pos:      s.X,
		vel:      vel,
		acc:      acc,
		jerk:     jerk,
		segments: segments,
	}
}

// Len returns the number of rows.
func (tb *Table) Len() int {
	return len(tb.t)
}

// Empty reports whether the table has no rows.
func (tb *Table) Empty() bool {
	return tb.Len() == 0
}

// Segments returns the number of segments the table was built from.
func (tb *Table) Segments() int {
	return tb.segments
}

// Point returns row i (0-based).
func (tb *Table) Point(i int) TrajectoryPoint {
	return TrajectoryPoint{
		Index:   i + 1,
		Segment: tb.segment[i],
		T:       tb.t[i],
		Pos:     tb.pos[i],
		Vel:     tb.vel[i],
		Acc:     tb.acc[i],
		Jerk:    tb.jerk[i],
	}
}

// Points returns all rows.
func (tb *Table) Points() []TrajectoryPoint {
	return tb.Head(tb.Len())
}

// Head returns at most the first n rows.
func (tb *Table) Head(n int) []TrajectoryPoint {
	n = max(0, min(n, tb.Len()))
	out := make([]TrajectoryPoint, n)
	for i := range out {
		out[i] = tb.Point(i)
	}
	return out
}

// Preview returns the first DefaultPreviewRows rows.
func (tb *Table) Preview() []TrajectoryPoint {
	return tb.Head(DefaultPreviewRows)
}

// SegmentIDs returns the segment id column.
func (tb *Table) SegmentIDs() []int { return slices.Clone(tb.segment) }

// Time returns the time column in seconds.
func (tb *Table) Time() []float64 { return slices.Clone(tb.t) }

// Position returns the position column in mm.
func (tb *Table) Position() []float64 { return slices.Clone(tb.pos) }

// Velocity returns the velocity column in mm/s.
func (tb *Table) Velocity() []float64 { return slices.Clone(tb.vel) }

// Acceleration returns the acceleration column in mm/s².
func (tb *Table) Acceleration() []float64 { return slices.Clone(tb.acc) }

// Jerk returns the jerk column in mm/s³.
func (tb *Table) Jerk() []float64 { return slices.Clone(tb.jerk) }

// Summary holds aggregate kinematics of a trajectory.
type Summary struct {
	Points   int
	Segments int

	Duration float64 // s
	Travel   float64 // Final minus initial position, mm

	MeanVelocity    float64 // mm/s
	PeakVelocity    float64 // Max |vel|, mm/s
	PeakAccel       float64 // Max |acc|, mm/s²
	PeakJerk        float64 // Max |jerk|, mm/s³
	RMSAcceleration float64 // mm/s²
}

// Summary computes aggregate kinematics. Peak values ignore non-finite
// samples; mean and RMS propagate them.
func (tb *Table) Summary() Summary {
	s := Summary{Points: tb.Len(), Segments: tb.segments}
	n := tb.Len()
	if n == 0 {
		return s
	}

	ops := simdops.Float64Ops()

	s.Duration = tb.t[n-1] - tb.t[0]
	s.Travel = tb.pos[n-1] - tb.pos[0]
	s.MeanVelocity = ops.Sum(tb.vel) / float64(n)
	s.PeakVelocity = peakAbs(tb.vel)
	s.PeakAccel = peakAbs(tb.acc)
	s.PeakJerk = peakAbs(tb.jerk)
	s.RMSAcceleration = math.Sqrt(ops.DotProduct(tb.acc, tb.acc) / float64(n))

	return s
}

func peakAbs(s []float64) float64 {
	var peak float64
	for _, v := range s {
		if isFinite(v) {
			peak = max(peak, math.Abs(v))
		}
	}
	return peak
}
