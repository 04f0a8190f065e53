package camprofile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// CSVFilename is the suggested download name for exported tables.
const CSVFilename = "cam_profile.csv"

// ErrInvalidCSV indicates a CSV document that is not an exported table.
var ErrInvalidCSV = errors.New("invalid trajectory csv")

const (
	csvFloatFormat    = 'g'
	csvFloatPrecision = -1 // Shortest representation that round-trips
	csvFloatBits      = 64
)

// WriteCSV writes the table with a header row. Floats use the shortest
// representation that parses back to the identical value.
func (tb *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns()); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	record := make([]string, len(Columns()))
	for i := range tb.Len() {
		p := tb.Point(i)
		record[0] = strconv.Itoa(p.Index)
		record[1] = strconv.Itoa(p.Segment)
		record[2] = formatFloat(p.T)
		record[3] = formatFloat(p.Pos)
		record[4] = formatFloat(p.Vel)
		record[5] = formatFloat(p.Acc)
		record[6] = formatFloat(p.Jerk)

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", p.Index, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// CSV returns the table as CSV text.
func (tb *Table) CSV() (string, error) {
	var sb strings.Builder
	if err := tb.WriteCSV(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ReadCSV parses a table previously written by WriteCSV. The header must
// match Columns exactly and in order.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Columns())

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header", ErrInvalidCSV)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidCSV, err)
	}
	if !slices.Equal(header, Columns()) {
		return nil, fmt.Errorf("%w: unexpected header %q", ErrInvalidCSV, header)
	}

	tb := &Table{}
	line := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCSV, err)
		}

		if err := tb.appendRecord(record); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidCSV, line, err)
		}
	}

	if n := len(tb.segment); n > 0 {
		tb.segments = tb.segment[n-1]
	}
	return tb, nil
}

func (tb *Table) appendRecord(record []string) error {
	index, err := strconv.Atoi(record[0])
	if err != nil {
		return fmt.Errorf("index: %w", err)
	}
	if index != tb.Len()+1 {
		return fmt.Errorf("index %d out of sequence", index)
	}

	seg, err := strconv.Atoi(record[1])
	if err != nil {
		return fmt.Errorf("segment: %w", err)
	}

	var vals [5]float64
	for i := range vals {
		v, err := strconv.ParseFloat(record[i+2], csvFloatBits)
		if err != nil {
			return fmt.Errorf("%s: %w", Columns()[i+2], err)
		}
		vals[i] = v
	}

	tb.segment = append(tb.segment, seg)
	tb.t = append(tb.t, vals[0])
	tb.pos = append(tb.pos, vals[1])
	tb.vel = append(tb.vel, vals[2])
	tb.acc = append(tb.acc, vals[3])
	tb.jerk = append(tb.jerk, vals[4])
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, csvFloatFormat, csvFloatPrecision, csvFloatBits)
}
