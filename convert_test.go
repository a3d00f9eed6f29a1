package coursepointer_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fernbridge/coursepointer"
	"github.com/fernbridge/coursepointer/course"
	"github.com/fernbridge/coursepointer/fit"
	"github.com/fernbridge/coursepointer/gpx"
)

const oneTrackGpx = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test">
  <trk>
    <name>Century Loop</name>
    <trkseg>
      <trkpt lat="35.525" lon="-101.286"></trkpt>
      <trkpt lat="36.052" lon="-90.026"></trkpt>
      <trkpt lat="38.134" lon="-78.512"></trkpt>
    </trkseg>
  </trk>
  <wpt lat="35.951" lon="-94.973">
    <name>Rest Stop</name>
  </wpt>
</gpx>`

const twoTrackGpx = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test">
  <trk><name>A</name><trkseg>
    <trkpt lat="0" lon="0"></trkpt>
    <trkpt lat="0" lon="1"></trkpt>
  </trkseg></trk>
  <trk><name>B</name><trkseg>
    <trkpt lat="1" lon="0"></trkpt>
    <trkpt lat="1" lon="1"></trkpt>
  </trkseg></trk>
</gpx>`

func TestConvertProducesFitFile(t *testing.T) {
	var out bytes.Buffer
	info, err := coursepointer.Convert(strings.NewReader(oneTrackGpx), &out)
	require.NoError(t, err)

	require.Equal(t, 1, info.WaypointsConsidered)
	require.Equal(t, 1, info.CoursePointCount)
	require.Equal(t, 3, info.RecordCount)
	require.Greater(t, info.TotalDistanceM, 572863.0) // longer than the course point's along-route distance
	require.Equal(t, byte(0x0e), out.Bytes()[0])
}

func TestConvertFailsOnMultipleCourses(t *testing.T) {
	var out bytes.Buffer
	_, err := coursepointer.Convert(strings.NewReader(twoTrackGpx), &out)
	require.Error(t, err)

	var countErr *coursepointer.CourseCountError
	require.ErrorAs(t, err, &countErr)
	require.Equal(t, 2, countErr.Count)
}

func TestConvertAppliesClassifier(t *testing.T) {
	var out bytes.Buffer
	var classifiedNames []string
	classify := func(wpt gpx.WaypointData) fit.CoursePointType {
		classifiedNames = append(classifiedNames, wpt.Name)
		return fit.CoursePointRestArea
	}

	_, err := coursepointer.Convert(strings.NewReader(oneTrackGpx), &out,
		coursepointer.WithClassifier(classify),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"Rest Stop"}, classifiedNames)
}

func TestConvertThresholdOptionAffectsAttachment(t *testing.T) {
	var tight bytes.Buffer
	info, err := coursepointer.Convert(strings.NewReader(oneTrackGpx), &tight,
		coursepointer.WithCourseSetOptions(course.WithThreshold(1)),
	)
	require.NoError(t, err)
	require.Equal(t, 0, info.CoursePointCount)
}
