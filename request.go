package camprofile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Number is a JSON value accepted either as a number or as a numeric
// string, as form-driven clients often send both.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return errors.New("number is null")
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), csvFloatBits)
		if err != nil {
			return fmt.Errorf("invalid number %q", s)
		}
		*n = Number(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Number(v)
	return nil
}

// Row is one absolute waypoint as submitted by a client. Every numeric
// field is required; absent or null values are rejected by Waypoints.
type Row struct {
	Time     *Number `json:"Time"`
	Position *Number `json:"Position"`
	Lambda   *Number `json:"Lambda"`
	C        *Number `json:"C"`
	Profile  string  `json:"Motion Profile"`
}

// values returns the numeric fields, failing on the first missing one.
func (row *Row) values() (t, x, lambda, c float64, err error) {
	fields := [...]struct {
		name string
		v    *Number
	}{
		{"Time", row.Time},
		{"Position", row.Position},
		{"Lambda", row.Lambda},
		{"C", row.C},
	}
	for _, f := range fields {
		if f.v == nil {
			return 0, 0, 0, 0, fmt.Errorf("missing %s", f.name)
		}
	}
	return float64(*row.Time), float64(*row.Position), float64(*row.Lambda), float64(*row.C), nil
}

// Request is a generation request: absolute waypoint rows plus the sample
// count per segment.
type Request struct {
	Rows             []Row   `json:"rows"`
	PointsPerSegment *Number `json:"npts_per_seg,omitempty"`
}

// DecodeRequest reads a JSON request body.
func DecodeRequest(r io.Reader) (*Request, error) {
	var req Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return &req, nil
}

// Waypoints converts the rows into waypoints. A missing numeric field fails
// with ErrInvalidInput and the row number. Profile names are matched
// exactly; an unknown name fails with ErrUnknownProfile and the row number.
func (r *Request) Waypoints() ([]Waypoint, error) {
	waypoints := make([]Waypoint, 0, len(r.Rows))
	for i, row := range r.Rows {
		t, x, lambda, c, err := row.values()
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrInvalidInput, i+1, err)
		}
		kind, err := ParseProfile(row.Profile)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		waypoints = append(waypoints, Waypoint{
			Time:     t,
			Position: x,
			Lambda:   lambda,
			Blend:    c,
			Profile:  kind,
		})
	}
	return waypoints, nil
}

// Config returns the generation config for the request. An absent sample
// count selects DefaultPointsPerSegment; an explicit one is truncated to an
// integer and clamped to [MinPointsPerSegment, math.MaxInt32]. NaN maps to
// the upper bound so that limit checks reject it.
func (r *Request) Config() *Config {
	cfg := DefaultConfig()
	if r.PointsPerSegment != nil {
		v := float64(*r.PointsPerSegment)
		switch {
		case math.IsNaN(v) || v > math.MaxInt32:
			v = math.MaxInt32
		case v < MinPointsPerSegment:
			v = MinPointsPerSegment
		}
		cfg.PointsPerSegment = int(v)
	}
	return cfg
}

// Generate runs the request through the generator.
func (r *Request) Generate() (*Table, error) {
	waypoints, err := r.Waypoints()
	if err != nil {
		return nil, err
	}
	return Generate(waypoints, r.Config())
}
