package gpx_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fernbridge/coursepointer/gpx"
)

const sampleGpx = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test">
  <trk>
    <name>Morning Ride</name>
    <trkseg>
      <trkpt lat="35.525" lon="-101.286"><ele>1100</ele></trkpt>
      <trkpt lat="36.052" lon="-90.026"></trkpt>
    </trkseg>
  </trk>
  <wpt lat="35.951" lon="-94.973">
    <name>Rest Stop</name>
    <sym>Water Source</sym>
  </wpt>
</gpx>`

func TestReadItemsFlattensTrackAndWaypoint(t *testing.T) {
	items, err := gpx.ReadItems(strings.NewReader(sampleGpx))
	require.NoError(t, err)
	require.NotEmpty(t, items)

	var kinds []gpx.ItemKind
	for _, it := range items {
		kinds = append(kinds, it.Kind)
	}
	require.Contains(t, kinds, gpx.TrackOrRoute)
	require.Contains(t, kinds, gpx.TrackOrRouteName)
	require.Contains(t, kinds, gpx.TrackSegment)
	require.Contains(t, kinds, gpx.TrackOrRoutePoint)
	require.Contains(t, kinds, gpx.Waypoint)

	last := items[len(items)-1]
	require.Equal(t, gpx.Waypoint, last.Kind)
	require.Equal(t, "Rest Stop", last.Wpt.Name)
	require.Equal(t, "Water Source", last.Wpt.Symbol)
	require.InDelta(t, 35.951, last.Wpt.Point.Lat(), 1e-9)
	require.InDelta(t, -94.973, last.Wpt.Point.Lon(), 1e-9)
}

func TestReadItemsRejectsMalformedXml(t *testing.T) {
	_, err := gpx.ReadItems(strings.NewReader("not gpx at all"))
	require.Error(t, err)
}

func TestReadItemsEmptyDocumentProducesNoItems(t *testing.T) {
	empty := `<?xml version="1.0"?><gpx version="1.1" creator="test"></gpx>`
	items, err := gpx.ReadItems(strings.NewReader(empty))
	require.NoError(t, err)
	require.Empty(t, items)
}
