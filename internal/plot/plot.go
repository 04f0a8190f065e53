// Package plot renders trajectory charts as PNG images.
package plot

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/color"
	"io"
	"math"

	camprofile "github.com/tphakala/go-cam-profile"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	// DefaultWidth and DefaultHeight are the image size in inches.
	DefaultWidth  = 7.0
	DefaultHeight = 3.0

	dataURIPrefix = "data:image/png;base64,"
	timeLabel     = "Time [s]"
)

// Size is an image size in inches.
type Size struct {
	Width, Height float64
}

// DefaultSize returns the default 7x3 inch size.
func DefaultSize() Size {
	return Size{Width: DefaultWidth, Height: DefaultHeight}
}

// Chart describes one time series chart.
type Chart struct {
	Label string
	Y     []float64
	Color color.Color
}

var (
	blue   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	orange = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	green  = color.RGBA{R: 44, G: 160, B: 44, A: 255}
)

// Charts returns the position, velocity and acceleration charts of a table.
func Charts(tb *camprofile.Table) []Chart {
	return []Chart{
		{Label: "Position [mm]", Y: tb.Position(), Color: blue},
		{Label: "Velocity [mm/s]", Y: tb.Velocity(), Color: orange},
		{Label: "Acceleration [mm/s²]", Y: tb.Acceleration(), Color: green},
	}
}

// WritePNG draws chart against t and writes it as PNG.
func WritePNG(w io.Writer, t []float64, chart Chart, size Size) error {
	if len(t) != len(chart.Y) {
		return fmt.Errorf("plot %q: %d times but %d values", chart.Label, len(t), len(chart.Y))
	}

	p := plot.New()
	p.X.Label.Text = timeLabel
	p.Y.Label.Text = chart.Label
	p.Add(plotter.NewGrid())

	if xys := finiteXYs(t, chart.Y); len(xys) > 0 {
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("plot %q: %w", chart.Label, err)
		}
		if chart.Color != nil {
			line.Color = chart.Color
		}
		p.Add(line)
		p.Legend.Add(chart.Label, line)
		p.Legend.Top = true
	}

	wt, err := p.WriterTo(vg.Length(size.Width)*vg.Inch, vg.Length(size.Height)*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("plot %q: %w", chart.Label, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("plot %q: %w", chart.Label, err)
	}
	return nil
}

// DataURI renders chart as a base64 PNG data URI.
func DataURI(t []float64, chart Chart, size Size) (string, error) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, t, chart, size); err != nil {
		return "", err
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Render returns data URIs for the position, velocity and acceleration
// charts of tb, in that order.
func Render(tb *camprofile.Table, size Size) ([]string, error) {
	t := tb.Time()
	charts := Charts(tb)
	out := make([]string, 0, len(charts))
	for _, c := range charts {
		uri, err := DataURI(t, c, size)
		if err != nil {
			return nil, err
		}
		out = append(out, uri)
	}
	return out, nil
}

// finiteXYs drops samples where either coordinate is NaN or Inf.
func finiteXYs(x, y []float64) plotter.XYs {
	xys := make(plotter.XYs, 0, len(x))
	for i := range x {
		if isFinite(x[i]) && isFinite(y[i]) {
			xys = append(xys, plotter.XY{X: x[i], Y: y[i]})
		}
	}
	return xys
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
