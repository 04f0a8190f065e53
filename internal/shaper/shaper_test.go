package shaper

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-cam-profile/internal/testutil"
	"gonum.org/v1/gonum/floats"
)

const endpointTolerance = 1e-9

func grid(n int) []float64 {
	u := floats.Span(make([]float64, n), 0, 1)
	u[n-1] = 1
	return u
}

// TestCurve_Endpoints verifies every shape starts at 0 and ends at 1.
func TestCurve_Endpoints(t *testing.T) {
	lambdas := []float64{0, 0.1, 0.3, 0.5, 0.7, 1}
	blends := []float64{0, 0.25, 0.5, 0.75, 1}
	u := grid(101)

	for _, kind := range Kinds() {
		for _, lambda := range lambdas {
			for _, blend := range blends {
				s := Curve(nil, u, kind, lambda, blend)
				assert.InDelta(t, 0.0, s[0], endpointTolerance,
					"%v lambda=%v C=%v: s(0)=%v", kind, lambda, blend, s[0])
				assert.InDelta(t, 1.0, s[len(s)-1], endpointTolerance,
					"%v lambda=%v C=%v: s(1)=%v", kind, lambda, blend, s[len(s)-1])
			}
		}
	}
}

// TestCurve_ZeroBlendIsIdentity verifies C=0 with no center shift is pure linear motion.
func TestCurve_ZeroBlendIsIdentity(t *testing.T) {
	u := grid(57)
	for _, kind := range Kinds() {
		s := Curve(nil, u, kind, 0.5, 0)
		for i := range u {
			assert.InDelta(t, u[i], s[i], endpointTolerance, "%v at u=%v", kind, u[i])
		}
	}
}

// TestCurve_ZeroBlendFollowsWarp verifies C=0 yields the warped variable for any lambda.
func TestCurve_ZeroBlendFollowsWarp(t *testing.T) {
	u := grid(64)
	for _, lambda := range []float64{0.1, 0.35, 0.8} {
		w := Warp(make([]float64, len(u)), u, lambda, 0)
		for _, kind := range Kinds() {
			s := Curve(nil, u, kind, lambda, 0)
			for i := range u {
				assert.InDelta(t, w[i], s[i], 1e-15)
			}
		}
	}
}

func TestCurve_FullBlendMatchesBaseShape(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		f    func(w float64) float64
	}{
		{"straight", StraightLine, func(w float64) float64 { return w }},
		{"parabola", QuadraticParabola, func(w float64) float64 {
			if w < 0.5 {
				return 2 * w * w
			}
			return 1 - 2*(1-w)*(1-w)
		}},
		{"quintic", QuinticPolynomial, func(w float64) float64 {
			return 10*math.Pow(w, 3) - 15*math.Pow(w, 4) + 6*math.Pow(w, 5)
		}},
		{"sine", SimpleSinusoid, func(w float64) float64 { return 0.5 - 0.5*math.Cos(math.Pi*w) }},
	}

	u := grid(41)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Curve(nil, u, tt.kind, 0.5, 1)
			for i, v := range u {
				assert.InDelta(t, tt.f(v), s[i], 1e-12, "u=%v", v)
			}
		})
	}
}

func TestCurve_Monotonic(t *testing.T) {
	u := grid(200)
	for _, kind := range Kinds() {
		for _, lambda := range []float64{0.2, 0.5, 0.9} {
			s := Curve(nil, u, kind, lambda, 0.6)
			testutil.AssertMonotonic(t, s)
			testutil.AssertAllInRange(t, s, -endpointTolerance, 1+endpointTolerance)
		}
	}
}

// TestCurve_ModifiedSinusoidSteepens verifies larger C concentrates motion mid-segment.
func TestCurve_ModifiedSinusoidSteepens(t *testing.T) {
	u := grid(101)
	soft := Base(make([]float64, len(u)), u, ModifiedSinusoid, 0.1)
	steep := Base(make([]float64, len(u)), u, ModifiedSinusoid, 0.9)

	// Quarter point lags further behind with a higher exponent.
	assert.Less(t, steep[25], soft[25])
	assert.InDelta(t, 1.0, steep[100], endpointTolerance)
	assert.InDelta(t, 0.0, steep[0], endpointTolerance)
}

// TestBase_ModifiedSinusoidUsesGrid verifies renormalization spans the grid, not single points.
func TestBase_ModifiedSinusoidUsesGrid(t *testing.T) {
	partial := []float64{0, 0.25, 0.5}
	s := Base(make([]float64, len(partial)), partial, ModifiedSinusoid, 1)
	assert.InDelta(t, 1.0, s[2], 1e-8, "grid maximum maps to 1")
	assert.InDelta(t, 0.0, s[0], endpointTolerance)
}

func TestWarp_IdentityAtCenter(t *testing.T) {
	u := grid(11)
	w := Warp(make([]float64, len(u)), u, 0.5+1e-12, 0.7)
	assert.Equal(t, u, w)
}

func TestWarp_ShiftsMidpoint(t *testing.T) {
	u := grid(101)

	early := Warp(make([]float64, len(u)), u, 0.2, 1)
	late := Warp(make([]float64, len(u)), u, 0.8, 1)

	// An early center advances the warped variable, a late one holds it back.
	assert.Greater(t, early[50], 0.5)
	assert.Less(t, late[50], 0.5)
}

func TestCurve_EmptyGrid(t *testing.T) {
	assert.Empty(t, Curve(nil, nil, SimpleSinusoid, 0.3, 0.5))
}

func TestCurve_LengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		Curve(make([]float64, 2), make([]float64, 3), StraightLine, 0.5, 0)
	})
}

func TestKind_Lookup(t *testing.T) {
	for _, kind := range Kinds() {
		got, ok := Lookup(kind.String())
		require.True(t, ok, kind.String())
		assert.Equal(t, kind, got)
	}

	_, ok := Lookup("straight line")
	assert.False(t, ok, "lookup is case sensitive")

	_, ok = Lookup("Cycloid")
	assert.False(t, ok)

	assert.False(t, Kind(42).Valid())
	assert.Equal(t, "Kind(42)", Kind(42).String())
	assert.Len(t, Kinds(), 5)
}

// BenchmarkCurve_ModifiedSinusoid benchmarks the most expensive shape.
func BenchmarkCurve_ModifiedSinusoid(b *testing.B) {
	u := grid(1000)
	dst := make([]float64, len(u))
	for b.Loop() {
		Curve(dst, u, ModifiedSinusoid, 0.3, 0.8)
	}
}

func TestKind_Text(t *testing.T) {
	text, err := QuinticPolynomial.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Polynomial of 5th degree", string(text))

	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("Modified sinus")))
	assert.Equal(t, ModifiedSinusoid, k)

	err = k.UnmarshalText([]byte("Cycloid"))
	require.ErrorIs(t, err, ErrUnknownKind)
	assert.Contains(t, err.Error(), "Cycloid")

	_, err = Kind(-1).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownKind)
}
