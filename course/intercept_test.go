package course

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const microDegree = 1e-6

func mustGeoPoint(t *testing.T, lat, lon float64) GeoPoint {
	t.Helper()
	p, err := NewGeoPoint(lat, lon, nil)
	require.NoError(t, err)
	return p
}

func TestKarneyInterceptionZeroLengthSegment(t *testing.T) {
	start := NewGeoAndXyzPoint(mustGeoPoint(t, 3, 4))
	seg, err := NewGeoSegment(start, start)
	require.NoError(t, err)

	query := NewGeoAndXyzPoint(mustGeoPoint(t, 3.5, 4.5))
	got, err := KarneyInterception(seg, query)
	require.NoError(t, err)

	require.InDelta(t, 3.0, got.Lat(), microDegree)
	require.InDelta(t, 4.0, got.Lon(), microDegree)
}

func TestKarneyInterceptionQueryOnStart(t *testing.T) {
	start := NewGeoAndXyzPoint(mustGeoPoint(t, 3, 4))
	end := NewGeoAndXyzPoint(mustGeoPoint(t, 3.5, 4.5))
	seg, err := NewGeoSegment(start, end)
	require.NoError(t, err)

	got, err := KarneyInterception(seg, start)
	require.NoError(t, err)

	require.InDelta(t, 3.0, got.Lat(), microDegree)
	require.InDelta(t, 4.0, got.Lon(), microDegree)
}

func TestInterceptDistanceFloorIsLowerBound(t *testing.T) {
	start := NewGeoAndXyzPoint(mustGeoPoint(t, 3, 4))
	end := NewGeoAndXyzPoint(mustGeoPoint(t, 3.5, 4.5))
	seg, err := NewGeoSegment(start, end)
	require.NoError(t, err)

	query := NewGeoAndXyzPoint(mustGeoPoint(t, 3.2, 4.3))
	floor := InterceptDistanceFloor(seg, query.Xyz)

	intercept, err := KarneyInterception(seg, query)
	require.NoError(t, err)
	trueDistance, err := geodInverse(query.Geo, intercept)
	require.NoError(t, err)

	require.LessOrEqual(t, floor, trueDistance+1) // +1m slack for the chord-depth approximation
	require.False(t, math.IsNaN(floor))
}
