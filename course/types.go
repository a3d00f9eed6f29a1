package course

import (
	"fmt"

	"github.com/fernbridge/coursepointer/fit"
	"github.com/fernbridge/coursepointer/geod"
)

// GeoPoint is a point on the surface of the WGS84 ellipsoid: latitude in
// [-90, 90], longitude in [-180, 180], with an optional elevation in
// meters. Immutable once constructed.
type GeoPoint struct {
	lat, lon float64
	ele      *float64
}

// NewGeoPoint validates lat/lon and returns a GeoPoint, or ErrGeoPointInvariant
// if either is out of range.
func NewGeoPoint(lat, lon float64, ele *float64) (GeoPoint, error) {
	if lat < -90 || lat > 90 {
		return GeoPoint{}, fmt.Errorf("%w: latitude %v out of [-90, 90]", ErrGeoPointInvariant, lat)
	}
	if lon < -180 || lon > 180 {
		return GeoPoint{}, fmt.Errorf("%w: longitude %v out of [-180, 180]", ErrGeoPointInvariant, lon)
	}
	return GeoPoint{lat: lat, lon: lon, ele: ele}, nil
}

func (p GeoPoint) Lat() float64     { return p.lat }
func (p GeoPoint) Lon() float64     { return p.lon }
func (p GeoPoint) Ele() *float64    { return p.ele }
func (p GeoPoint) Equals(o GeoPoint) bool {
	return p.lat == o.lat && p.lon == o.lon
}

func (p GeoPoint) latLon() geod.LatLon {
	return geod.LatLon{Latitude: geod.Degrees(p.lat), Longitude: geod.Degrees(p.lon)}
}

func geoPointFromLatLon(ll geod.LatLon) GeoPoint {
	return GeoPoint{lat: float64(ll.Latitude), lon: float64(ll.Longitude)}
}

// geodInverse solves the geodesic distance between two GeoPoints, wrapping
// any failure as a GeographicError.
func geodInverse(p1, p2 GeoPoint) (float64, error) {
	soln, err := geod.Inverse(p1.latLon(), p2.latLon())
	if err != nil {
		return 0, &GeographicError{Op: "inverse", Err: err}
	}
	return soln.Distance, nil
}

// XyzPoint is a geocentric (ECEF) cartesian coordinate in meters.
type XyzPoint = geod.Cartesian

// GeoAndXyzPoint pairs a GeoPoint with its derived XyzPoint, so the
// (relatively expensive) geocentric projection is computed once per route
// point and reused across every waypoint it's measured against.
type GeoAndXyzPoint struct {
	Geo GeoPoint
	Xyz XyzPoint
}

func NewGeoAndXyzPoint(p GeoPoint) GeoAndXyzPoint {
	return GeoAndXyzPoint{Geo: p, Xyz: geod.GeocentricForward(p.latLon())}
}

// XyPoint is a planar (x, y) point in meters, the coordinate system of a
// gnomonic projection.
type XyPoint = geod.XYPoint

// GeoSegment is a directed geodesic arc between two points, with
// precomputed length and initial azimuth. A zero-length segment (start ==
// end) is legal.
type GeoSegment struct {
	Start, End GeoAndXyzPoint
	Length     float64     // meters
	Azimuth1   geod.Degrees // forward azimuth at Start
}

// NewGeoSegment solves the geodesic inverse between start and end and
// returns the resulting segment.
func NewGeoSegment(start, end GeoAndXyzPoint) (GeoSegment, error) {
	soln, err := geod.Inverse(start.Geo.latLon(), end.Geo.latLon())
	if err != nil {
		return GeoSegment{}, &GeographicError{Op: "new_geo_segment", Err: err}
	}
	return GeoSegment{Start: start, End: end, Length: soln.Distance, Azimuth1: soln.Azimuth1}, nil
}

// Waypoint is a named point of interest to be matched against a route.
type Waypoint struct {
	Point   GeoPoint
	Name    string
	Comment string
	Symbol  string
	Type    fit.CoursePointType
}

// Record is one vertex of a course's geometry: a point plus its cumulative
// along-course distance from the start.
type Record struct {
	Point              GeoPoint
	CumulativeDistance float64 // meters, nondecreasing across a Course's Records
}

// CoursePoint is a waypoint that intercepted a route closely enough to be
// attached to the course, recorded at its interception point (not the
// waypoint's original position).
type CoursePoint struct {
	Point    GeoPoint
	Distance float64 // meters along the course
	Type     fit.CoursePointType
	Name     string
}

// Course is an assembled, immutable route: an ordered list of Records plus
// the CoursePoints attached to it, sorted by ascending distance.
type Course struct {
	Name         string
	Records      []Record
	CoursePoints []CoursePoint
}

// TotalDistance returns the course's total length, or 0 if it has no
// records.
func (c Course) TotalDistance() float64 {
	if len(c.Records) == 0 {
		return 0
	}
	return c.Records[len(c.Records)-1].CumulativeDistance
}

// CourseSet is the result of a Build: the assembled courses plus a count of
// how many waypoints were considered.
type CourseSet struct {
	Courses             []Course
	WaypointsConsidered int
}
