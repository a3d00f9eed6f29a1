package course

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildFailsWithNoRoute(t *testing.T) {
	b := NewCourseSetBuilder()
	_, err := b.Build()
	require.ErrorIs(t, err, ErrMissingCourse)
}

func TestLongSegmentCoursePointDistance(t *testing.T) {
	b := NewCourseSetBuilder(WithThreshold(35))
	route := b.AddRoute()
	route.WithRoutePoint(mustGeoPoint(t, 35.525, -101.286))
	route.WithRoutePoint(mustGeoPoint(t, 36.052, -90.026))
	route.WithRoutePoint(mustGeoPoint(t, 38.134, -78.512))

	b.AddWaypoint(Waypoint{Point: mustGeoPoint(t, 35.951, -94.973), Name: "Checkpoint"})

	set, err := b.Build()
	require.NoError(t, err)
	require.Len(t, set.Courses, 1)
	require.Len(t, set.Courses[0].CoursePoints, 1)

	got := set.Courses[0].CoursePoints[0].Distance
	want := 572863.0
	require.InEpsilon(t, want, got, 0.0001) // 0.01% tolerance
}

func TestRoutePointDedupSkipsConsecutiveDuplicates(t *testing.T) {
	b := NewCourseSetBuilder()
	route := b.AddRoute()
	p := mustGeoPoint(t, 10, 10)
	route.WithRoutePoint(p)
	route.WithRoutePoint(p)
	route.WithRoutePoint(mustGeoPoint(t, 10.001, 10.001))

	require.Equal(t, 1, route.SkippedCount())

	set, err := b.Build()
	require.NoError(t, err)
	require.Len(t, set.Courses[0].Records, 2)
}

func TestWaypointsConsideredCountsEveryWaypointRegardlessOfAttachment(t *testing.T) {
	b := NewCourseSetBuilder(WithThreshold(35))
	route := b.AddRoute()
	route.WithRoutePoint(mustGeoPoint(t, 0, 0))
	route.WithRoutePoint(mustGeoPoint(t, 0, 1))

	b.AddWaypoint(Waypoint{Point: mustGeoPoint(t, 0, 0.5), Name: "Near"})
	b.AddWaypoint(Waypoint{Point: mustGeoPoint(t, 45, 45), Name: "Far"})

	set, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 2, set.WaypointsConsidered)
	require.Len(t, set.Courses[0].CoursePoints, 1)
}

// outAndBackRoute builds a route that passes near (0, 1) twice: once on
// an outbound leg, then again on a return leg after a long detour to
// (lat, lon 10) that stays far from the waypoint the whole way. The two
// near passes are non-adjacent segments, separated by three far ones.
func outAndBackRoute(t *testing.T, b *CourseSetBuilder) *RouteBuilder {
	t.Helper()
	route := b.AddRoute()
	route.WithRoutePoint(mustGeoPoint(t, -0.5, 0.95))
	route.WithRoutePoint(mustGeoPoint(t, 0.5, 1.05))
	route.WithRoutePoint(mustGeoPoint(t, 0.5, 10))
	route.WithRoutePoint(mustGeoPoint(t, -0.5, 10))
	route.WithRoutePoint(mustGeoPoint(t, -0.5, 0.95))
	route.WithRoutePoint(mustGeoPoint(t, 0.5, 1.02))
	return route
}

func TestAllStrategyKeepsEveryNearInterception(t *testing.T) {
	b := NewCourseSetBuilder(WithThreshold(20000), WithStrategy(All))
	outAndBackRoute(t, b)

	b.AddWaypoint(Waypoint{Point: mustGeoPoint(t, 0, 1), Name: "Mid"})

	set, err := b.Build()
	require.NoError(t, err)
	// All keeps both the outbound and the return interception as distinct
	// course points instead of collapsing them to one.
	require.Len(t, set.Courses[0].CoursePoints, 2)
}

func TestFirstStrategyKeepsOnlyFirstInCourseOrder(t *testing.T) {
	b := NewCourseSetBuilder(WithThreshold(20000), WithStrategy(First))
	outAndBackRoute(t, b)

	b.AddWaypoint(Waypoint{Point: mustGeoPoint(t, 0, 1), Name: "Mid"})

	set, err := b.Build()
	require.NoError(t, err)
	require.Len(t, set.Courses[0].CoursePoints, 1)

	// The return pass only happens after the multi-thousand-kilometer
	// detour through lon 10; if First kept that one instead of the
	// earliest interception its course distance would be enormous.
	require.Less(t, set.Courses[0].CoursePoints[0].Distance, 500000.0)
}
