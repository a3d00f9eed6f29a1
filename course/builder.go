package course

import (
	"math"
	"sort"
	"sync"
)

// InterceptStrategy selects which of a waypoint's near interceptions (on a
// single route) become course points.
type InterceptStrategy int

const (
	// Nearest keeps only the near interception with the smallest
	// interception distance.
	Nearest InterceptStrategy = iota
	// First keeps only the first near interception in course order.
	First
	// All keeps every near interception as a separate course point,
	// allowing out-and-back multiplicity.
	All
)

// CourseSetOptions configures a CourseSetBuilder.
type CourseSetOptions struct {
	ThresholdM float64
	Strategy   InterceptStrategy
}

func defaultCourseSetOptions() CourseSetOptions {
	return CourseSetOptions{ThresholdM: 35, Strategy: Nearest}
}

// CourseSetOption customizes a CourseSetOptions value.
type CourseSetOption func(*CourseSetOptions)

func WithThreshold(meters float64) CourseSetOption {
	return func(o *CourseSetOptions) { o.ThresholdM = meters }
}

func WithStrategy(s InterceptStrategy) CourseSetOption {
	return func(o *CourseSetOptions) { o.Strategy = s }
}

// RouteBuilder accumulates the points of a single route (track or route) as
// they're read from an input stream.
type RouteBuilder struct {
	name    string
	points  []GeoPoint
	skipped int
}

func (r *RouteBuilder) WithName(name string) *RouteBuilder {
	r.name = name
	return r
}

// WithRoutePoint appends p, unless it's identical to the route's current
// last point, in which case it's silently dropped and counted as skipped.
func (r *RouteBuilder) WithRoutePoint(p GeoPoint) *RouteBuilder {
	if len(r.points) > 0 && r.points[len(r.points)-1].Equals(p) {
		r.skipped++
		return r
	}
	r.points = append(r.points, p)
	return r
}

// SkippedCount returns how many consecutive-duplicate points were dropped.
func (r *RouteBuilder) SkippedCount() int {
	return r.skipped
}

// CourseSetBuilder assembles one or more routes and a shared list of
// waypoints into a CourseSet.
type CourseSetBuilder struct {
	options   CourseSetOptions
	routes    []*RouteBuilder
	waypoints []Waypoint
}

// NewCourseSetBuilder constructs a builder with defaults (threshold 35m,
// Nearest strategy) overridden by opts.
func NewCourseSetBuilder(opts ...CourseSetOption) *CourseSetBuilder {
	options := defaultCourseSetOptions()
	for _, apply := range opts {
		apply(&options)
	}
	return &CourseSetBuilder{options: options}
}

// AddRoute starts a new route and returns a builder for its points.
func (b *CourseSetBuilder) AddRoute() *RouteBuilder {
	r := &RouteBuilder{}
	b.routes = append(b.routes, r)
	return r
}

// AddWaypoint appends a waypoint to the flat list measured against every
// route.
func (b *CourseSetBuilder) AddWaypoint(w Waypoint) {
	b.waypoints = append(b.waypoints, w)
}

type interceptResult struct {
	intercept        GeoPoint
	interceptDistance float64
	courseDistance   float64
}

// Build runs the full assembly protocol and returns the resulting
// CourseSet, or an error if no route was ever added or a geodesic solve
// fails.
func (b *CourseSetBuilder) Build() (CourseSet, error) {
	if len(b.routes) == 0 {
		return CourseSet{}, ErrMissingCourse
	}

	courses := make([]Course, len(b.routes))
	for i, rb := range b.routes {
		c, err := b.buildCourse(rb)
		if err != nil {
			return CourseSet{}, err
		}
		courses[i] = c
	}

	return CourseSet{Courses: courses, WaypointsConsidered: len(b.waypoints)}, nil
}

func (b *CourseSetBuilder) buildCourse(rb *RouteBuilder) (Course, error) {
	lifted := make([]GeoAndXyzPoint, len(rb.points))
	for i, p := range rb.points {
		lifted[i] = NewGeoAndXyzPoint(p)
	}

	numSegments := maxInt(len(lifted)-1, 0)
	segments := make([]GeoSegment, 0, numSegments)
	startDistances := make([]float64, 0, numSegments)
	cumulative := 0.0
	for i := 0; i+1 < len(lifted); i++ {
		seg, err := NewGeoSegment(lifted[i], lifted[i+1])
		if err != nil {
			return Course{}, err
		}
		segments = append(segments, seg)
		startDistances = append(startDistances, cumulative)
		cumulative += seg.Length
	}
	totalDistance := cumulative

	coursePoints, err := b.interceptWaypoints(segments, startDistances)
	if err != nil {
		return Course{}, err
	}

	records := make([]Record, 0, len(lifted))
	for i, seg := range segments {
		records = append(records, Record{Point: seg.Start.Geo, CumulativeDistance: startDistances[i]})
	}
	if len(lifted) > 0 {
		records = append(records, Record{Point: lifted[len(lifted)-1].Geo, CumulativeDistance: totalDistance})
	}

	sort.SliceStable(coursePoints, func(i, j int) bool {
		return coursePoints[i].Distance < coursePoints[j].Distance
	})

	return Course{Name: rb.name, Records: records, CoursePoints: coursePoints}, nil
}

// interceptWaypoints runs the per-waypoint processing step (embarrassingly
// parallel across waypoints, strictly ordered collection) and applies the
// configured strategy to each waypoint's near interceptions.
func (b *CourseSetBuilder) interceptWaypoints(segments []GeoSegment, startDistances []float64) ([]CoursePoint, error) {
	type outcome struct {
		points []CoursePoint
		err    error
	}
	outcomes := make([]outcome, len(b.waypoints))

	var wg sync.WaitGroup
	for i := range b.waypoints {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			pts, err := b.interceptOneWaypoint(b.waypoints[idx], segments, startDistances)
			outcomes[idx] = outcome{points: pts, err: err}
		}(i)
	}
	wg.Wait()

	var result []CoursePoint
	for _, o := range outcomes {
		if o.err != nil {
			return nil, o.err
		}
		result = append(result, o.points...)
	}
	return result, nil
}

func (b *CourseSetBuilder) interceptOneWaypoint(wp Waypoint, segments []GeoSegment, startDistances []float64) ([]CoursePoint, error) {
	if len(segments) == 0 {
		return nil, nil
	}

	liftedWp := NewGeoAndXyzPoint(wp.Point)

	measurements := make([]float64, len(segments))
	results := make([]interceptResult, len(segments))

	for i, seg := range segments {
		floor := InterceptDistanceFloor(seg, liftedWp.Xyz)
		if floor > b.options.ThresholdM {
			measurements[i] = math.Inf(1)
			continue
		}

		intercept, err := KarneyInterception(seg, liftedWp)
		if err != nil {
			return nil, err
		}

		interceptSoln, err := geodInverse(liftedWp.Geo, intercept)
		if err != nil {
			return nil, err
		}
		fromStartSoln, err := geodInverse(seg.Start.Geo, intercept)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(interceptSoln) || math.IsNaN(fromStartSoln) {
			return nil, &AlgorithmError{Op: "intercept_waypoint", Err: ErrNaNDistance}
		}

		measurements[i] = interceptSoln
		results[i] = interceptResult{
			intercept:         intercept,
			interceptDistance: interceptSoln,
			courseDistance:    startDistances[i] + fromStartSoln,
		}
	}

	nearIdx := FindNearbySegments(measurements, b.options.ThresholdM)
	if len(nearIdx) == 0 {
		return nil, nil
	}

	chosen := applyStrategy(b.options.Strategy, nearIdx, results)

	points := make([]CoursePoint, len(chosen))
	for i, idx := range chosen {
		r := results[idx]
		points[i] = CoursePoint{Point: r.intercept, Distance: r.courseDistance, Type: wp.Type, Name: wp.Name}
	}
	return points, nil
}

func applyStrategy(strategy InterceptStrategy, nearIdx []int, results []interceptResult) []int {
	switch strategy {
	case First:
		return nearIdx[:1]
	case All:
		return nearIdx
	default: // Nearest
		best := nearIdx[0]
		for _, idx := range nearIdx[1:] {
			if results[idx].interceptDistance < results[best].interceptDistance {
				best = idx
			}
		}
		return []int{best}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
