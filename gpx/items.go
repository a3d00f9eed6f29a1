package gpx

import "github.com/fernbridge/coursepointer/course"

// ItemKind discriminates the variants of Item, mirroring the typed stream a
// GPX document is flattened into: track/route boundaries, their points, and
// the document's waypoints.
type ItemKind int

const (
	// TrackOrRoute marks the start of a new track or route. Subsequent
	// TrackOrRouteName, TrackSegment, and TrackOrRoutePoint items, up to
	// the next TrackOrRoute, belong to it.
	TrackOrRoute ItemKind = iota
	// TrackOrRouteName carries the name of the current track or route.
	TrackOrRouteName
	// TrackSegment marks the start of a new segment within the current
	// track. Routes have no segments.
	TrackSegment
	// TrackOrRoutePoint is a point along the current track segment or
	// route, in order of its position along it.
	TrackOrRoutePoint
	// Waypoint is a named location, global to the document and not
	// associated with any particular track or route.
	Waypoint
)

// Item is one element of the flattened GPX item stream. Only the fields
// relevant to Kind are populated.
type Item struct {
	Kind  ItemKind
	Name  string          // TrackOrRouteName
	Point course.GeoPoint // TrackOrRoutePoint
	Wpt   WaypointData    // Waypoint
}

// WaypointData carries a GPX waypoint's raw fields. Mapping Symbol/Comment/
// Type to a course.CoursePointType is an external concern (see Classifier);
// this struct only preserves what the document said.
type WaypointData struct {
	Point   course.GeoPoint
	Name    string
	Comment string
	Symbol  string
	Type    string
}
