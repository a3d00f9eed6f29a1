package fit

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func minimalCourse() *Course {
	return &Course{
		Name: "Test Course",
		Records: []Record{
			{Lat: 35.525, Lon: -101.286, DistanceM: 0},
			{Lat: 36.052, Lon: -90.026, DistanceM: 572863},
		},
	}
}

func TestCourseFileEncodeSizeMatchesHeader(t *testing.T) {
	cf := NewCourseFile(minimalCourse())

	var buf bytes.Buffer
	require.NoError(t, cf.Encode(&buf))

	dataSize, err := cf.getDataSize()
	require.NoError(t, err)

	// 12-byte header body + 2-byte header CRC + data_size bytes + 2-byte
	// trailing body CRC.
	require.Equal(t, 14+dataSize+2, buf.Len())
}

func TestCourseFileEncodeWritesHeaderCrc(t *testing.T) {
	cf := NewCourseFile(minimalCourse())

	var buf bytes.Buffer
	require.NoError(t, cf.Encode(&buf))

	var c crc
	c.addBytes(buf.Bytes()[:12])
	gotLo, gotHi := buf.Bytes()[12], buf.Bytes()[13]
	require.Equal(t, byte(c.sum), gotLo)
	require.Equal(t, byte(c.sum>>8), gotHi)
}

func TestCourseFileEncodeRejectsEmptyRecords(t *testing.T) {
	cf := NewCourseFile(&Course{Name: "Empty"})
	var buf bytes.Buffer
	err := cf.Encode(&buf)
	require.ErrorIs(t, err, ErrIntegerEncoding)
}

// The course_point definition frame must always be written, even when the
// course attaches zero course points, so a reader knows local message type 5
// means course_point throughout the file.
func TestCourseFileAlwaysEmitsCoursePointDefinition(t *testing.T) {
	withPoints := &Course{
		Name:    "With points",
		Records: minimalCourse().Records,
		CoursePoints: []CoursePoint{
			{Name: "Aid Station", Lat: 35.9, Lon: -95, DistanceM: 400000, Type: CoursePointAidStation},
		},
	}
	withoutPoints := &Course{Name: "Without points", Records: minimalCourse().Records}

	sizeWith, err := NewCourseFile(withPoints).getDataSize()
	require.NoError(t, err)
	sizeWithout, err := NewCourseFile(withoutPoints).getDataSize()
	require.NoError(t, err)

	definitionOnly := definitionMessageSize(len(coursePointFields()))
	oneDataMessage := dataMessageSize(coursePointFields())

	// The gap between the two sizes must be exactly one course_point data
	// message; if the definition frame were only emitted conditionally, the
	// gap would also include definitionOnly.
	require.Equal(t, oneDataMessage, sizeWith-sizeWithout)
	require.NotEqual(t, definitionOnly, sizeWith-sizeWithout)
}

func TestCourseFileEncodesWithoutError(t *testing.T) {
	course := &Course{
		Name: "With points",
		Records: []Record{
			{Lat: 35.525, Lon: -101.286, DistanceM: 0},
			{Lat: 36.052, Lon: -90.026, DistanceM: 572863},
			{Lat: 38.134, Lon: -78.512, DistanceM: 1131230},
		},
		CoursePoints: []CoursePoint{
			{Name: "Rest Stop", Lat: 35.951, Lon: -94.973, DistanceM: 572863, Type: CoursePointRestArea},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, NewCourseFile(course).Encode(&buf))
	require.Equal(t, byte(0x0e), buf.Bytes()[0])
}
