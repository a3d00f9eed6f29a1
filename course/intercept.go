package course

import (
	"math"

	"github.com/fernbridge/coursepointer/geod"
)

const (
	wgs84A = 6378137.0
	wgs84F = 1.0 / 298.257223563
	wgs84B = wgs84A * (1.0 - wgs84F)
)

// KarneyInterception finds the point on geodesic segment seg with minimum
// geodesic distance to p, by repeated gnomonic re-projection around a
// converging guess.
func KarneyInterception(seg GeoSegment, p GeoAndXyzPoint) (GeoPoint, error) {
	var guess geod.LatLon
	if seg.Length == 0 {
		guess = seg.Start.Geo.latLon()
	} else {
		soln, err := geod.Direct(seg.Start.Geo.latLon(), seg.Azimuth1, seg.Length/2)
		if err != nil {
			return GeoPoint{}, &GeographicError{Op: "karney_interception: initial guess", Err: err}
		}
		guess = soln.Point
	}

	startGeo := seg.Start.Geo.latLon()
	endGeo := seg.End.Geo.latLon()
	pointGeo := p.Geo.latLon()

	for i := 0; i < 10; i++ {
		s, err := geod.GnomonicForward(guess, startGeo)
		if err != nil {
			return GeoPoint{}, &GeographicError{Op: "karney_interception: project start", Err: err}
		}
		e, err := geod.GnomonicForward(guess, endGeo)
		if err != nil {
			return GeoPoint{}, &GeographicError{Op: "karney_interception: project end", Err: err}
		}
		pp, err := geod.GnomonicForward(guess, pointGeo)
		if err != nil {
			return GeoPoint{}, &GeographicError{Op: "karney_interception: project point", Err: err}
		}

		b := xySub(e, s)
		a := xySub(pp, s)

		v := clampedProjection2(a, b)

		next := geod.XYPoint{X: s.X + v.X, Y: s.Y + v.Y}
		guessPoint, err := geod.GnomonicReverse(guess, next)
		if err != nil {
			return GeoPoint{}, &GeographicError{Op: "karney_interception: reverse project", Err: err}
		}
		guess = guessPoint
	}

	return geoPointFromLatLon(guess), nil
}

func xySub(a, b geod.XYPoint) geod.XYPoint {
	return geod.XYPoint{X: a.X - b.X, Y: a.Y - b.Y}
}

func dot2(a, b geod.XYPoint) float64 {
	return a.X*b.X + a.Y*b.Y
}

// clampedProjection2 returns the projection of a onto b, clamped to the
// segment [0, b]: zero if a·b ≤ 0, b if the projection overshoots b,
// otherwise the raw projection.
func clampedProjection2(a, b geod.XYPoint) geod.XYPoint {
	ab := dot2(a, b)
	if ab <= 0 {
		return geod.XYPoint{}
	}
	t := ab / dot2(b, b)
	proj := geod.XYPoint{X: b.X * t, Y: b.Y * t}
	if dot2(proj, proj) >= dot2(b, b) {
		return b
	}
	return proj
}

// InterceptDistanceFloor returns a conservative lower bound on the true
// geodesic interception distance between seg and p, cheap enough to run
// against every segment before reaching for KarneyInterception.
func InterceptDistanceFloor(seg GeoSegment, p XyzPoint) float64 {
	dist := cartesianInterceptDistance(seg, p)
	depth := maxChordDepth(seg)
	return dist - depth
}

func maxChordDepth(seg GeoSegment) float64 {
	chord := geod.Vector3D(seg.Start.Xyz).Minus(geod.Vector3D(seg.End.Xyz))
	l := chord.Length()
	return wgs84A * (1 - math.Sqrt(1-l*l/(4*wgs84B*wgs84B)))
}

func cartesianInterceptDistance(seg GeoSegment, p XyzPoint) float64 {
	start := geod.Vector3D(seg.Start.Xyz)
	end := geod.Vector3D(seg.End.Xyz)
	pv := geod.Vector3D(p)

	b := end.Minus(start)
	a := pv.Minus(start)

	intercept := clampedProjection3(a, b)
	return a.Minus(intercept).Length()
}

func clampedProjection3(a, b geod.Vector3D) geod.Vector3D {
	ab := a.Dot(b)
	if ab <= 0 {
		return geod.Vector3D{}
	}
	t := ab / b.Dot(b)
	proj := b.Times(t)
	if proj.Dot(proj) < b.Dot(b) {
		return proj
	}
	return b
}
