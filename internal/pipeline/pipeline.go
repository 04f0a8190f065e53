// Package pipeline stitches sampled segments into one continuous
// time/position series.
//
// Segments are sampled left to right, each anchored at the final sample of
// the previous one. Every segment after the first drops its first sample,
// which duplicates the previous segment's last sample, so the series is
// continuous in time and position with no repeated boundary points.
package pipeline

import (
	"sync"

	"github.com/tphakala/go-cam-profile/internal/segment"
)

// Series is a stitched trajectory before differentiation.
type Series struct {
	T       []float64 // Time in seconds
	X       []float64 // Position in mm
	Segment []int     // 1-based segment id of each sample
}

// Len returns the number of samples.
func (s *Series) Len() int {
	return len(s.T)
}

// Options controls stitching.
type Options struct {
	// PointsPerSegment is the sample count of every segment, clamped to
	// segment.MinPoints.
	PointsPerSegment int

	// Parallel evaluates segment shapes concurrently. Anchoring stays
	// sequential, so the result is bit-identical to the sequential path.
	Parallel bool
}

// ExpectedLen returns the stitched length for the given segment count.
func ExpectedLen(segments, pointsPerSegment int) int {
	if segments == 0 {
		return 0
	}
	n := segment.ClampPoints(pointsPerSegment)
	return segments*n - (segments - 1)
}

// Stitch samples every delta and concatenates the results. An empty delta
// list yields an empty series.
func Stitch(deltas []segment.Delta, opts Options) *Series {
	n := segment.ClampPoints(opts.PointsPerSegment)
	total := ExpectedLen(len(deltas), n)

	s := &Series{
		T:       make([]float64, 0, total),
		X:       make([]float64, 0, total),
		Segment: make([]int, 0, total),
	}
	if len(deltas) == 0 {
		return s
	}

	u := segment.Grid(n)
	shapes := shapeAll(deltas, u, opts.Parallel)

	var t0, x0 float64
	for i, d := range deltas {
		t, x := segment.Anchor(d, u, shapes[i], t0, x0)

		if i > 0 {
			t = t[1:]
			x = x[1:]
		}

		s.T = append(s.T, t...)
		s.X = append(s.X, x...)
		for range t {
			s.Segment = append(s.Segment, i+1)
		}

		t0 = t[len(t)-1]
		x0 = x[len(x)-1]
	}

	return s
}

// shapeAll evaluates the normalized curve of every segment.
func shapeAll(deltas []segment.Delta, u []float64, parallel bool) [][]float64 {
	shapes := make([][]float64, len(deltas))

	if !parallel || len(deltas) < minParallelSegments {
		for i, d := range deltas {
			shapes[i] = segment.Shape(d, u)
		}
		return shapes
	}

	var wg sync.WaitGroup
	for i := range deltas {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			shapes[idx] = segment.Shape(deltas[idx], u)
		}(i)
	}
	wg.Wait()

	return shapes
}
