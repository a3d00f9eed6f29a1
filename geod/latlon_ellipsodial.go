package geod

// Pure Go re-implementation of https://github.com/chrisveness/geodesy

/**
 * Copyright (c) 2020, Xerra Earth Observation Institute
 * All rights reserved. Use is subject to License terms.
 * See LICENSE in the root directory of this source tree.
 */

import (
	"math"
)

/**
 * A latitude/longitude point defines a geographic location on or above/below the earth's surface,
 * measured in degrees from the equator & the International Reference Meridian and in metres above
 * the ellipsoid, and based on a given datum.
 *
 * As so much modern geodesy is based on WGS-84 (as used by GPS), this module includes WGS-84
 * ellipsoid parameters, and it has methods for converting geodetic (latitude/longitude) points to/from
 * geocentric cartesian points; the latlon-ellipsoidal-datum and latlon-ellipsoidal-referenceframe
 * modules provide transformation parameters for converting between historical datums and between
 * modern reference frames.
 *
 * This module is used for both trigonometric geodesy (eg latlon-ellipsoidal-vincenty) and n-vector
 * geodesy (eg latlon-nvector-ellipsoidal), and also for UTM/MGRS mapping.
 *
 */


// LatLonEllipsoidal represents latitude/longitude points on an ellipsoidal model earth,
// with ellipsoid parameters and methods for converting points to/from cartesian (ECEF) coordinates.
type LatLonEllipsoidal struct {
	LatLon
	Height float64
	ellipsoid Ellipsoid
}

// NewLatLonEllipsodial creates a new LatLonEllipsoidal struct
func NewLatLonEllipsodial(latitude, longitude Degrees, height float64) LatLonEllipsoidal {
	return LatLonEllipsoidal{
		LatLon: LatLon{
			Latitude: Wrap90(latitude),
			Longitude: Wrap180(longitude),
		},
		Height: height,
		ellipsoid: WGS84(),
	}
}

// Equals checks if the `other` point is equal to this point
//
// Example
// p1 := geod.NewLatLonEllipsodial(52.205, 0.119, 0)
// p2 := geod.NewLatLonEllipsodial(52.205, 0.119, 0)
// equal := p1.Equals(p2) // true
func (l LatLonEllipsoidal)Equals(other LatLonEllipsoidal) bool {
	epsilon := math.Nextafter(1.0, 2.0)-1.0
        if math.Abs(float64(l.Latitude) - float64(other.Latitude)) > epsilon {
		return false
	}
        if math.Abs(float64(l.Longitude) - float64(other.Longitude)) > epsilon {
		return false
	}
	if math.Abs(l.Height - other.Height) > epsilon {
		return false
	}
	if l.ellipsoid != other.ellipsoid {
		return false
	}
        return true
}
