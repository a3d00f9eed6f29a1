package geod

import (
	"fmt"
	"math"
)

// InverseSolution is the result of a geodesic inverse solve: the shortest
// geodesic distance between two points, plus the forward azimuth at the
// first point.
type InverseSolution struct {
	Distance float64 // metres
	Azimuth1 Degrees // degrees from true north at p1
}

// DirectSolution is the result of a geodesic direct solve: the point reached
// by travelling a given distance along a given initial azimuth.
type DirectSolution struct {
	Point LatLon
}

// Inverse returns the shortest geodesic between p1 and p2 on the WGS84
// ellipsoid. Coincident points, and points too close together for the
// Vincenty solver to separate (roughly 10 cm or less apart), return a
// zero-length solution with an undefined (zero) azimuth, rather than failing.
func Inverse(p1, p2 LatLon) (InverseSolution, error) {
	if p1.Equals(p2) {
		return InverseSolution{Distance: 0, Azimuth1: 0}, nil
	}

	v := VincentyModel(p1)
	dist, az1, _ := v.VincentyInverse(p2)
	d := dist.Metre()
	if d == 0 {
		return InverseSolution{Distance: 0, Azimuth1: 0}, nil
	}
	if math.IsNaN(d) || math.IsNaN(float64(az1)) {
		return InverseSolution{}, fmt.Errorf("geodesy: inverse solution failed to converge between %+v and %+v", p1, p2)
	}
	return InverseSolution{Distance: d, Azimuth1: az1}, nil
}

// Direct returns the endpoint reached by travelling `length` metres from p1
// along initial azimuth `azimuth`.
func Direct(p1 LatLon, azimuth Degrees, length float64) (DirectSolution, error) {
	v := VincentyModel(p1)
	point, _ := v.VincentyDirect(length, azimuth)
	if !point.Valid() {
		return DirectSolution{}, fmt.Errorf("geodesy: direct solution failed to converge from %+v (azimuth=%v, length=%v)", p1, azimuth, length)
	}
	return DirectSolution{Point: point}, nil
}

// GeocentricForward converts a geodetic latitude/longitude point (height
// assumed zero) into ECEF (earth-centered earth-fixed) geocentric cartesian
// coordinates on the WGS84 ellipsoid.
func GeocentricForward(p LatLon) Cartesian {
	ll := LatLonEllipsoidal{LatLon: p, Height: 0, ellipsoid: WGS84()}
	return ll.Cartesian()
}
