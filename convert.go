package coursepointer

import (
	"fmt"
	"io"

	"github.com/fernbridge/coursepointer/course"
	"github.com/fernbridge/coursepointer/fit"
	"github.com/fernbridge/coursepointer/gpx"
)

// ConversionInfo reports what Convert did, for callers that want to log or
// display a summary without re-deriving it from the output file.
type ConversionInfo struct {
	WaypointsConsidered    int
	SkippedDuplicatePoints int
	RecordCount            int
	CoursePointCount       int
	TotalDistanceM         float64
}

type convertConfig struct {
	courseOpts []course.CourseSetOption
	fitOpts    []fit.FitCourseOption
	classify   Classifier
}

// ConvertOption customizes a Convert call.
type ConvertOption func(*convertConfig)

// WithCourseSetOptions forwards options to the underlying course.CourseSetBuilder.
func WithCourseSetOptions(opts ...course.CourseSetOption) ConvertOption {
	return func(c *convertConfig) { c.courseOpts = append(c.courseOpts, opts...) }
}

// WithFitCourseOptions forwards options to the FIT encoder.
func WithFitCourseOptions(opts ...fit.FitCourseOption) ConvertOption {
	return func(c *convertConfig) { c.fitOpts = append(c.fitOpts, opts...) }
}

// WithClassifier overrides the waypoint-to-CoursePointType classifier. The
// default, GenericClassifier, tags every waypoint CoursePointGeneric.
func WithClassifier(classify Classifier) ConvertOption {
	return func(c *convertConfig) { c.classify = classify }
}

// Convert reads a GPX document from r, locates waypoints along its sole
// track or route, and writes the resulting FIT course file to w. It fails
// with a *CourseCountError if the input does not contain exactly one track
// or route.
func Convert(r io.Reader, w io.Writer, opts ...ConvertOption) (ConversionInfo, error) {
	cfg := convertConfig{classify: GenericClassifier}
	for _, apply := range opts {
		apply(&cfg)
	}

	items, err := gpx.ReadItems(r)
	if err != nil {
		return ConversionInfo{}, fmt.Errorf("coursepointer: reading GPX: %w", err)
	}

	builder := course.NewCourseSetBuilder(cfg.courseOpts...)
	var routeBuilders []*course.RouteBuilder
	var current *course.RouteBuilder

	for _, item := range items {
		switch item.Kind {
		case gpx.TrackOrRoute:
			current = builder.AddRoute()
			routeBuilders = append(routeBuilders, current)

		case gpx.TrackOrRouteName:
			if current == nil {
				return ConversionInfo{}, course.ErrMissingCourse
			}
			current.WithName(item.Name)

		case gpx.TrackSegment:
			// Segments aren't modeled separately; their points flow
			// into the enclosing route/track unchanged.

		case gpx.TrackOrRoutePoint:
			if current == nil {
				return ConversionInfo{}, course.ErrMissingCourse
			}
			current.WithRoutePoint(item.Point)

		case gpx.Waypoint:
			builder.AddWaypoint(course.Waypoint{
				Point:   item.Wpt.Point,
				Name:    item.Wpt.Name,
				Comment: item.Wpt.Comment,
				Symbol:  item.Wpt.Symbol,
				Type:    cfg.classify(item.Wpt),
			})
		}
	}

	if len(routeBuilders) == 0 {
		return ConversionInfo{}, &CourseCountError{Count: 0}
	}

	courseSet, err := builder.Build()
	if err != nil {
		return ConversionInfo{}, fmt.Errorf("coursepointer: %w", err)
	}
	if len(courseSet.Courses) != 1 {
		return ConversionInfo{}, &CourseCountError{Count: len(courseSet.Courses)}
	}

	built := courseSet.Courses[0]
	fitCourse := toFitCourse(built)

	courseFile := fit.NewCourseFile(&fitCourse, cfg.fitOpts...)
	if err := courseFile.Encode(w); err != nil {
		return ConversionInfo{}, fmt.Errorf("coursepointer: encoding FIT output: %w", err)
	}

	return ConversionInfo{
		WaypointsConsidered:    courseSet.WaypointsConsidered,
		SkippedDuplicatePoints: routeBuilders[0].SkippedCount(),
		RecordCount:            len(built.Records),
		CoursePointCount:       len(built.CoursePoints),
		TotalDistanceM:         built.TotalDistance(),
	}, nil
}

func toFitCourse(c course.Course) fit.Course {
	records := make([]fit.Record, len(c.Records))
	for i, r := range c.Records {
		records[i] = fit.Record{Lat: r.Point.Lat(), Lon: r.Point.Lon(), DistanceM: r.CumulativeDistance}
	}

	points := make([]fit.CoursePoint, len(c.CoursePoints))
	for i, cp := range c.CoursePoints {
		points[i] = fit.CoursePoint{
			Name:      cp.Name,
			Lat:       cp.Point.Lat(),
			Lon:       cp.Point.Lon(),
			DistanceM: cp.Distance,
			Type:      cp.Type,
		}
	}

	return fit.Course{Name: c.Name, Records: records, CoursePoints: points}
}
