package camprofile

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRequest(t *testing.T) {
	body := `{
		"rows": [
			{"Time": 50, "Position": "5", "Lambda": 0.5, "C": "0.25", "Motion Profile": "Simple sinus"},
			{"Time": "150", "Position": 5, "Lambda": "0.4", "C": 1, "Motion Profile": "Polynomial of 5th degree"}
		],
		"npts_per_seg": 20
	}`

	req, err := DecodeRequest(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, req.Rows, 2)

	waypoints, err := req.Waypoints()
	require.NoError(t, err)
	assert.Equal(t, []Waypoint{
		{Time: 50, Position: 5, Lambda: 0.5, Blend: 0.25, Profile: SimpleSinusoid},
		{Time: 150, Position: 5, Lambda: 0.4, Blend: 1, Profile: QuinticPolynomial},
	}, waypoints)

	assert.Equal(t, 20, req.Config().PointsPerSegment)

	table, err := req.Generate()
	require.NoError(t, err)
	assert.Equal(t, 39, table.Len())
}

func TestRequest_PointsPerSegment(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"absent", `{"rows": []}`, DefaultPointsPerSegment},
		{"null", `{"rows": [], "npts_per_seg": null}`, DefaultPointsPerSegment},
		{"string", `{"rows": [], "npts_per_seg": "64"}`, 64},
		{"fractional", `{"rows": [], "npts_per_seg": 12.9}`, 12},
		{"zero", `{"rows": [], "npts_per_seg": 0}`, MinPointsPerSegment},
		{"negative", `{"rows": [], "npts_per_seg": -5}`, MinPointsPerSegment},
		{"huge", `{"rows": [], "npts_per_seg": 1e30}`, math.MaxInt32},
		{"huge string", `{"rows": [], "npts_per_seg": "1e30"}`, math.MaxInt32},
		{"NaN string", `{"rows": [], "npts_per_seg": "NaN"}`, math.MaxInt32},
		{"negative infinity", `{"rows": [], "npts_per_seg": "-Inf"}`, MinPointsPerSegment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := DecodeRequest(strings.NewReader(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Config().PointsPerSegment)
		})
	}
}

func TestRequest_UnknownProfile(t *testing.T) {
	body := `{"rows": [
		{"Time": 10, "Position": 1, "Lambda": 0.5, "C": 0, "Motion Profile": "Straight line"},
		{"Time": 20, "Position": 2, "Lambda": 0.5, "C": 0, "Motion Profile": "Cycloid"}
	]}`

	req, err := DecodeRequest(strings.NewReader(body))
	require.NoError(t, err)

	_, err = req.Generate()
	require.ErrorIs(t, err, ErrUnknownProfile)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "Cycloid")
}

func TestDecodeRequest_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `rows=1`},
		{"bad number string", `{"rows": [{"Time": "soon", "Position": 1, "Lambda": 0.5, "C": 0, "Motion Profile": "Straight line"}]}`},
		{"bool number", `{"rows": [{"Time": true, "Position": 1, "Lambda": 0.5, "C": 0, "Motion Profile": "Straight line"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRequest(strings.NewReader(tt.body))
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRequest_HugePointsPerSegmentRejected(t *testing.T) {
	req, err := DecodeRequest(strings.NewReader(`{"rows": [
		{"Time": 10, "Position": 1, "Lambda": 0.5, "C": 0, "Motion Profile": "Straight line"}
	], "npts_per_seg": 1e30}`))
	require.NoError(t, err)

	_, err = req.Generate()
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRequest_MissingField(t *testing.T) {
	tests := []struct {
		name  string
		row   string
		field string
	}{
		{"time", `{"Position": 1, "Lambda": 0.5, "C": 0, "Motion Profile": "Straight line"}`, "Time"},
		{"position", `{"Time": 1, "Lambda": 0.5, "C": 0, "Motion Profile": "Straight line"}`, "Position"},
		{"lambda", `{"Time": 1, "Position": 1, "C": 0, "Motion Profile": "Straight line"}`, "Lambda"},
		{"C", `{"Time": 1, "Position": 1, "Lambda": 0.5, "Motion Profile": "Straight line"}`, "C"},
		{"null time", `{"Time": null, "Position": 1, "Lambda": 0.5, "C": 0, "Motion Profile": "Straight line"}`, "Time"},
	}

	first := `{"Time": 1, "Position": 1, "Lambda": 0.5, "C": 0, "Motion Profile": "Straight line"}`
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := DecodeRequest(strings.NewReader(`{"rows": [` + first + `, ` + tt.row + `]}`))
			require.NoError(t, err)

			_, err = req.Waypoints()
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), "row 2")
			assert.Contains(t, err.Error(), "missing "+tt.field)
		})
	}
}

func TestRequest_EmptyRows(t *testing.T) {
	req, err := DecodeRequest(strings.NewReader(`{"rows": []}`))
	require.NoError(t, err)

	table, err := req.Generate()
	require.NoError(t, err)
	assert.True(t, table.Empty())
}
