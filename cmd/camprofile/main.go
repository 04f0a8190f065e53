// Command camprofile generates a cam motion trajectory from a JSON waypoint
// file and writes it as CSV.
//
// Usage:
//
//	camprofile -in waypoints.json -out cam_profile.csv
//	camprofile -in waypoints.json -npts 500 -parallel -v
//	camprofile -in waypoints.json -period 0.001 -out servo_table.csv
//	camprofile -demo
//
// The input uses the same document the HTTP service accepts:
//
//	{"rows": [{"Time": 100, "Position": 10, "Lambda": 0.5, "C": 1, "Motion Profile": "Simple sinus"}],
//	 "npts_per_seg": 100}
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	camprofile "github.com/tphakala/go-cam-profile"
	"github.com/tphakala/go-cam-profile/internal/simdops"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		inPath   = flag.String("in", "", "Input waypoint JSON file (- for stdin)")
		outPath  = flag.String("out", "", "Output CSV file (- for stdout, empty to skip)")
		npts     = flag.Int("npts", 0, "Samples per segment (overrides npts_per_seg in the input)")
		parallel = flag.Bool("parallel", false, "Shape segments concurrently")
		preview  = flag.Int("preview", 0, "Print the first N rows")
		period   = flag.Float64("period", 0, "Resample to a fixed period in seconds before writing (0 keeps segment sampling)")
		method   = flag.String("interp", "cubic", "Resampling interpolation: cubic, linear")
		verbose  = flag.Bool("v", false, "Verbose output")
		demo     = flag.Bool("demo", false, "Run a demonstration")
	)
	flag.Parse()

	if *demo {
		return runDemo()
	}

	if *inPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] -in waypoints.json\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return errors.New("missing -in")
	}

	req, err := readRequest(*inPath)
	if err != nil {
		return err
	}

	waypoints, err := req.Waypoints()
	if err != nil {
		return err
	}

	config := req.Config()
	if *npts > 0 {
		config.PointsPerSegment = *npts
	}
	config.EnableParallel = *parallel

	if *verbose {
		log.Printf("Input: %s (%d waypoints)", *inPath, len(waypoints))
		log.Printf("Points per segment: %d", config.PointsPerSegment)
		log.Printf("Parallel: %v", config.EnableParallel)
		log.Printf("SIMD: %s", simdops.Info())
	}

	start := time.Now()
	table, err := camprofile.Generate(waypoints, config)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if table.Empty() {
		return errors.New("no rows")
	}

	if *period > 0 {
		table, err = resample(table, *period, *method)
		if err != nil {
			return err
		}
		if *verbose {
			log.Printf("Resampled to %d rows at %g s (%s)", table.Len(), *period, *method)
		}
	}

	printSummary(os.Stdout, table.Summary(), elapsed)

	if *preview > 0 {
		printPoints(os.Stdout, table.Head(*preview))
	}

	if *outPath != "" {
		if err := writeTable(*outPath, table); err != nil {
			return err
		}
		if *verbose {
			log.Printf("Wrote %d rows to %s", table.Len(), *outPath)
		}
	}

	return nil
}

func resample(table *camprofile.Table, period float64, method string) (*camprofile.Table, error) {
	m, err := camprofile.ParseInterpolation(method)
	if err != nil {
		return nil, err
	}
	return table.Resample(period, m)
}

func readRequest(path string) (*camprofile.Request, error) {
	if path == stdioPath {
		return camprofile.DecodeRequest(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return camprofile.DecodeRequest(f)
}

func writeTable(path string, table *camprofile.Table) error {
	if path == stdioPath {
		return table.WriteCSV(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := table.WriteCSV(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return f.Close()
}

func printSummary(w io.Writer, s camprofile.Summary, elapsed time.Duration) {
	fmt.Fprintf(w, "Trajectory: %d points, %d segments (%v)\n", s.Points, s.Segments, elapsed.Round(time.Microsecond))
	fmt.Fprintf(w, "  Duration:       %.4f s\n", s.Duration)
	fmt.Fprintf(w, "  Travel:         %.4f mm\n", s.Travel)
	fmt.Fprintf(w, "  Mean velocity:  %.4f mm/s\n", s.MeanVelocity)
	fmt.Fprintf(w, "  Peak velocity:  %.4f mm/s\n", s.PeakVelocity)
	fmt.Fprintf(w, "  Peak accel:     %.4f mm/s^2\n", s.PeakAccel)
	fmt.Fprintf(w, "  Peak jerk:      %.4f mm/s^3\n", s.PeakJerk)
	fmt.Fprintf(w, "  RMS accel:      %.4f mm/s^2\n", s.RMSAcceleration)
}

func printPoints(w io.Writer, points []camprofile.TrajectoryPoint) {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', tabwriter.AlignRight)
	for i, name := range camprofile.Columns() {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, name)
	}
	fmt.Fprintln(tw, "\t")

	for _, p := range points {
		fmt.Fprintf(tw, "%d\t%d\t%.5f\t%.5f\t%.5f\t%.5f\t%.5f\t\n",
			p.Index, p.Segment, p.T, p.Pos, p.Vel, p.Acc, p.Jerk)
	}
	_ = tw.Flush()
}

func runDemo() error {
	fmt.Println("=== Cam Profile Demo ===")

	fmt.Println("\n1. Comparing Profiles")
	fmt.Println("---------------------")

	for _, kind := range camprofile.Profiles() {
		table, err := camprofile.Generate([]camprofile.Waypoint{
			{Time: demoMoveTime, Position: demoMoveDistance, Lambda: demoLambda, Blend: 1, Profile: kind},
		}, nil)
		if err != nil {
			return fmt.Errorf("%v: %w", kind, err)
		}
		s := table.Summary()
		fmt.Printf("  %-26s peak vel %8.2f mm/s, peak acc %9.2f mm/s^2, RMS acc %8.2f mm/s^2\n",
			kind, s.PeakVelocity, s.PeakAccel, s.RMSAcceleration)
	}

	fmt.Println("\n2. Center Shift (Simple sinus, C=1)")
	fmt.Println("-----------------------------------")

	for _, lambda := range demoLambdas {
		table, err := camprofile.Generate([]camprofile.Waypoint{
			{Time: demoMoveTime, Position: demoMoveDistance, Lambda: lambda, Blend: 1, Profile: camprofile.SimpleSinusoid},
		}, nil)
		if err != nil {
			return err
		}

		vel := table.Velocity()
		tm := table.Time()
		peak := 0
		for i := range vel {
			if vel[i] > vel[peak] {
				peak = i
			}
		}
		fmt.Printf("  lambda=%.2f: peak velocity %.2f mm/s at t=%.3f s\n", lambda, vel[peak], tm[peak])
	}

	fmt.Println("\n3. Rise, Dwell, Return")
	fmt.Println("----------------------")

	table, err := camprofile.Generate([]camprofile.Waypoint{
		{Time: 100, Position: 20, Lambda: 0.5, Blend: 1, Profile: camprofile.QuinticPolynomial},
		{Time: 150, Position: 20, Lambda: 0.5, Blend: 0, Profile: camprofile.StraightLine},
		{Time: 250, Position: 0, Lambda: 0.5, Blend: 1, Profile: camprofile.ModifiedSinusoid},
	}, nil)
	if err != nil {
		return err
	}
	printSummary(os.Stdout, table.Summary(), 0)

	fmt.Println("\n=== Demo Complete ===")
	return nil
}
