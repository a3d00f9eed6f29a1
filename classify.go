package coursepointer

import (
	"github.com/fernbridge/coursepointer/fit"
	"github.com/fernbridge/coursepointer/gpx"
)

// Classifier assigns a fit.CoursePointType to a raw GPX waypoint, based on
// its name/comment/symbol/type fields and whatever convention the
// originating application used to populate them. This is a caller concern:
// different GPX producers (GaiaGPS, RideWithGPS, ...) use incompatible
// symbol vocabularies, and no single lookup table covers them all.
type Classifier func(wpt gpx.WaypointData) fit.CoursePointType

// GenericClassifier is the default Classifier: every waypoint becomes a
// CoursePointGeneric course point. Callers with a known GPX producer should
// supply their own symbol table instead.
func GenericClassifier(gpx.WaypointData) fit.CoursePointType {
	return fit.CoursePointGeneric
}
