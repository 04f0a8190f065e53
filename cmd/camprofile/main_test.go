package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	camprofile "github.com/tphakala/go-cam-profile"
)

func TestReadRequest_FileNotFound(t *testing.T) {
	_, err := readRequest("/nonexistent/waypoints.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestReadRequest_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := readRequest(path)
	assert.ErrorIs(t, err, camprofile.ErrInvalidInput)
}

func TestReadRequest_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waypoints.json")
	body := `{"rows": [{"Time": 100, "Position": 10, "Lambda": 0.5, "C": 0, "Motion Profile": "Straight line"}], "npts_per_seg": 10}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	req, err := readRequest(path)
	require.NoError(t, err)
	assert.Len(t, req.Rows, 1)
	assert.Equal(t, 10, req.Config().PointsPerSegment)
}

func TestWriteTable_InvalidDirectory(t *testing.T) {
	table, err := camprofile.Generate(nil, nil)
	require.NoError(t, err)

	err = writeTable("/nonexistent/dir/out.csv", table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestWriteTable_Success(t *testing.T) {
	table, err := camprofile.Generate([]camprofile.Waypoint{
		{Time: 100, Position: 10, Lambda: 0.5, Profile: camprofile.StraightLine},
	}, &camprofile.Config{PointsPerSegment: 5})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, writeTable(path, table))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 6)
}

func TestPrintSummaryAndPoints(t *testing.T) {
	table, err := camprofile.Generate([]camprofile.Waypoint{
		{Time: 100, Position: 10, Lambda: 0.5, Profile: camprofile.StraightLine},
	}, &camprofile.Config{PointsPerSegment: 3})
	require.NoError(t, err)

	var buf bytes.Buffer
	printSummary(&buf, table.Summary(), 0)
	assert.Contains(t, buf.String(), "3 points, 1 segments")
	assert.Contains(t, buf.String(), "10.0000 mm")

	buf.Reset()
	printPoints(&buf, table.Points())
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "jerk [mm/s^3]")
}

func TestResample(t *testing.T) {
	table, err := camprofile.Generate([]camprofile.Waypoint{
		{Time: 100, Position: 10, Lambda: 0.5, Blend: 1, Profile: camprofile.SimpleSinusoid},
	}, nil)
	require.NoError(t, err)

	got, err := resample(table, 0.01, "linear")
	require.NoError(t, err)
	assert.Equal(t, 101, got.Len())

	_, err = resample(table, 0.01, "sinc")
	assert.ErrorIs(t, err, camprofile.ErrInvalidConfig)

	_, err = resample(table, 1e-300, "cubic")
	assert.ErrorIs(t, err, camprofile.ErrInvalidConfig)
}
