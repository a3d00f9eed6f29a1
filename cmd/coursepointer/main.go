// coursepointer converts a GPX track or route plus its waypoints into a
// Garmin FIT course file, attaching waypoints that pass close enough to the
// route as course points.
//
// Usage:
//
//	coursepointer -in ride.gpx -out ride.fit
//	coursepointer -in ride.gpx -out ride.fit -threshold 50 -speed 6.5 -force
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/fernbridge/coursepointer"
	"github.com/fernbridge/coursepointer/course"
	"github.com/fernbridge/coursepointer/fit"
)

func main() {
	in := flag.String("in", "", "input GPX file (required)")
	out := flag.String("out", "", "output FIT file (required)")
	force := flag.Bool("force", false, "overwrite -out if it already exists")
	threshold := flag.Float64("threshold", 35, "course point attachment threshold, in meters")
	speed := flag.Float64("speed", 8, "assumed average speed, in meters per second")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := run(*in, *out, *force, *threshold, *speed); err != nil {
		slog.Error("conversion failed", "err", err)
		os.Exit(1)
	}
}

func run(in, out string, force bool, threshold, speed float64) error {
	if in == "" || out == "" {
		return fmt.Errorf("both -in and -out are required")
	}

	inFile, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("opening %s: %w", in, err)
	}
	defer inFile.Close()

	outFlags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		outFlags |= os.O_EXCL
	}
	outFile, err := os.OpenFile(out, outFlags, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", out, err)
	}
	defer outFile.Close()

	info, err := coursepointer.Convert(inFile, outFile,
		coursepointer.WithCourseSetOptions(course.WithThreshold(threshold)),
		coursepointer.WithFitCourseOptions(fit.WithSpeed(speed)),
	)
	if err != nil {
		os.Remove(out)
		return err
	}

	slog.Info("conversion complete",
		"waypoints_considered", info.WaypointsConsidered,
		"course_points", info.CoursePointCount,
		"records", info.RecordCount,
		"skipped_duplicate_points", info.SkippedDuplicatePoints,
		"total_distance_m", info.TotalDistanceM,
	)
	return nil
}
