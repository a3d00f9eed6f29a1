package coursepointer

import "fmt"

// CourseCountError is returned when the GPX input does not contain exactly
// one track or route. Lower-layer failures (I/O, malformed GPX, geodesic
// solve failures, FIT encoding) are surfaced unchanged through Convert's
// wrapped returns; callers check those with errors.Is/errors.As against the
// originating package's own sentinels (gpx.ErrIo, gpx.ErrSchema,
// course.ErrMissingCourse, fit.ErrIntegerEncoding, and so on) rather than a
// parallel top-level taxonomy.
type CourseCountError struct {
	Count int
}

func (e *CourseCountError) Error() string {
	return fmt.Sprintf("coursepointer: input contains %d courses (tracks or routes), expected exactly 1", e.Count)
}
