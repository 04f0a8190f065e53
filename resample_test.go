package camprofile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-cam-profile/internal/testutil"
)

func riseReturn(t *testing.T, npts int) *Table {
	t.Helper()
	table, err := Generate([]Waypoint{
		{Time: 100, Position: 20, Lambda: 0.5, Blend: 1, Profile: SimpleSinusoid},
		{Time: 200, Position: 0, Lambda: 0.5, Blend: 1, Profile: QuinticPolynomial},
	}, &Config{PointsPerSegment: npts})
	require.NoError(t, err)
	return table
}

func TestResample_UniformGrid(t *testing.T) {
	src := riseReturn(t, 100)

	for _, method := range []Interpolation{InterpolationCubic, InterpolationLinear} {
		t.Run(method.String(), func(t *testing.T) {
			got, err := src.Resample(0.001, method)
			require.NoError(t, err)

			require.Equal(t, 2001, got.Len())
			assert.Equal(t, 2, got.Segments())

			times := got.Time()
			for i, tt := range times {
				assert.InDelta(t, float64(i)*0.001, tt, 1e-12)
			}

			pos := got.Position()
			assert.InDelta(t, 0.0, pos[0], testutil.EndpointTolerance)
			assert.InDelta(t, 20.0, pos[1000], 1e-6)
			assert.InDelta(t, 0.0, pos[2000], 1e-6)
			testutil.AssertAllInRange(t, pos, -1e-2, 20+1e-2)

			seg := got.SegmentIDs()
			assert.Equal(t, 1, seg[0])
			assert.Equal(t, 1, seg[1000])
			assert.Equal(t, 2, seg[1001])
			assert.Equal(t, 2, seg[2000])
		})
	}
}

func TestResample_CubicTracksSource(t *testing.T) {
	src := riseReturn(t, 400)
	coarse := riseReturn(t, 20)

	fine, err := coarse.Resample(1.0/400, InterpolationCubic)
	require.NoError(t, err)

	// Simple sine rise of 20 mm in 1 s: x = 10 - 10cos(pi t)
	for i, tt := range fine.Time() {
		if tt > 1 {
			break
		}
		want := 10 - 10*math.Cos(math.Pi*tt)
		assert.InDelta(t, want, fine.Position()[i], 0.05, "t=%g", tt)
	}
	assert.InDelta(t, src.Summary().PeakVelocity, fine.Summary().PeakVelocity, 1.0)
}

func TestResample_KeepsDurationWithDwell(t *testing.T) {
	src, err := Generate([]Waypoint{
		{Time: 50, Position: 5, Lambda: 0.5, Profile: StraightLine},
		{Time: 50, Position: 5, Lambda: 0.5, Profile: StraightLine},
		{Time: 100, Position: 10, Lambda: 0.5, Profile: StraightLine},
	}, &Config{PointsPerSegment: 11})
	require.NoError(t, err)

	got, err := src.Resample(0.1, InterpolationCubic)
	require.NoError(t, err)
	require.Equal(t, 11, got.Len())
	testutil.AssertNoNaNOrInf(t, got.Position())
	testutil.AssertMonotonic(t, got.Position())
}

func TestResample_Errors(t *testing.T) {
	src := riseReturn(t, 10)

	tests := []struct {
		name   string
		period float64
		method Interpolation
	}{
		{"zero period", 0, InterpolationCubic},
		{"negative period", -0.1, InterpolationCubic},
		{"NaN period", math.NaN(), InterpolationCubic},
		{"infinite period", math.Inf(1), InterpolationLinear},
		{"too many points", 1e-9, InterpolationLinear},
		{"step count beyond int range", 1e-300, InterpolationCubic},
		{"smallest period", math.SmallestNonzeroFloat64, InterpolationLinear},
		{"unknown method", 0.01, Interpolation(7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := src.Resample(tt.period, tt.method)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestResample_Empty(t *testing.T) {
	empty, err := Generate(nil, nil)
	require.NoError(t, err)

	got, err := empty.Resample(0.01, InterpolationCubic)
	require.NoError(t, err)
	assert.True(t, got.Empty())
}

func TestParseInterpolation(t *testing.T) {
	m, err := ParseInterpolation("linear")
	require.NoError(t, err)
	assert.Equal(t, InterpolationLinear, m)

	_, err = ParseInterpolation("spline")
	require.ErrorIs(t, err, ErrInvalidConfig)
}
