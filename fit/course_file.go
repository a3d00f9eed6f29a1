package fit

import (
	"fmt"
	"io"
	"time"
)

// CoursePoint is a single named point of interest attached to a Course, at
// a known cumulative distance along the route.
type CoursePoint struct {
	Name      string
	Lat, Lon  float64
	DistanceM float64
	Type      CoursePointType
}

// Record is one vertex of the encoded route geometry.
type Record struct {
	Lat, Lon  float64
	DistanceM float64
}

// Course is the plain data transfer object CourseFile encodes: a named
// route plus its ordered geometry and course points, already resolved to
// concrete coordinates and cumulative distances.
type Course struct {
	Name         string
	Records      []Record
	CoursePoints []CoursePoint
}

// CourseFile encodes a Course into the Garmin FIT course-file binary
// format.
type CourseFile struct {
	course  *Course
	options FitCourseOptions
}

// NewCourseFile builds a CourseFile ready to Encode, using the given
// options (or DefaultFitCourseOptions when none are supplied).
func NewCourseFile(course *Course, opts ...FitCourseOption) *CourseFile {
	return &CourseFile{course: course, options: NewFitCourseOptions(opts...)}
}

const (
	localFileId      = 0
	localCourse      = 1
	localLap         = 2
	localEvent       = 3
	localRecord      = 4
	localCoursePoint = 5
	localFileCreator = 6
)

// Encode writes the full FIT course file: header, definition/data frames in
// file_id, course, lap, event(start), record*, course_point*, event(stop),
// file_creator order, then the trailing CRC.
func (c *CourseFile) Encode(w io.Writer) error {
	if len(c.course.Records) == 0 {
		return fmt.Errorf("%w: course has no records", ErrIntegerEncoding)
	}

	dataSize, err := c.getDataSize()
	if err != nil {
		return err
	}
	header, err := newFileHeader(dataSize)
	if err != nil {
		return err
	}
	headerSink := newCheckSummingWriter(w)
	if err := header.encode(headerSink); err != nil {
		return err
	}
	if _, err := headerSink.finish(); err != nil {
		return err
	}

	sink := newCheckSummingWriter(w)
	if err := c.encodeBody(sink); err != nil {
		return err
	}
	if _, err := sink.finish(); err != nil {
		return err
	}
	return nil
}

func (c *CourseFile) encodeBody(w io.Writer) error {
	startTime, err := newDateTime(c.options.startTime)
	if err != nil {
		return err
	}

	if err := newDefinitionFrame(globalMessageFileId, localFileId, fileIdFields()).encode(w); err != nil {
		return err
	}
	if err := (fileIdMessage{timeCreated: startTime, productName: c.options.productName}).encode(localFileId, w); err != nil {
		return err
	}

	if err := newDefinitionFrame(globalMessageCourse, localCourse, courseFields()).encode(w); err != nil {
		return err
	}
	if err := (courseMessage{name: c.course.Name, sport: c.options.sport}).encode(localCourse, w); err != nil {
		return err
	}

	last := c.course.Records[len(c.course.Records)-1]
	durationMs, err := milliseconds(last.DistanceM / c.options.speed)
	if err != nil {
		return err
	}
	totalDistanceCm, err := centimeters(last.DistanceM)
	if err != nil {
		return err
	}
	startPoint, err := newSurfacePoint(c.course.Records[0].Lat, c.course.Records[0].Lon)
	if err != nil {
		return err
	}
	endPoint, err := newSurfacePoint(last.Lat, last.Lon)
	if err != nil {
		return err
	}
	if err := newDefinitionFrame(globalMessageLap, localLap, lapFields()).encode(w); err != nil {
		return err
	}
	lap := lapMessage{
		startTime:     startTime,
		durationMs:    durationMs,
		distanceCm:    totalDistanceCm,
		startPosition: startPoint,
		endPosition:   endPoint,
	}
	if err := lap.encode(localLap, w); err != nil {
		return err
	}

	if err := newDefinitionFrame(globalMessageEvent, localEvent, eventFields()).encode(w); err != nil {
		return err
	}
	if err := (eventMessage{timestamp: startTime, eventType: eventTypeStart}).encode(localEvent, w); err != nil {
		return err
	}

	if err := newDefinitionFrame(globalMessageRecord, localRecord, recordFields()).encode(w); err != nil {
		return err
	}
	for _, rec := range c.course.Records {
		pt, err := newSurfacePoint(rec.Lat, rec.Lon)
		if err != nil {
			return err
		}
		distCm, err := centimeters(rec.DistanceM)
		if err != nil {
			return err
		}
		elapsed := time.Duration(rec.DistanceM / c.options.speed * float64(time.Second))
		ts, err := newDateTime(c.options.startTime.Add(elapsed))
		if err != nil {
			return err
		}
		m := recordMessage{position: pt, distanceCm: distCm, timestamp: ts}
		if err := m.encode(localRecord, w); err != nil {
			return err
		}
	}

	if err := newDefinitionFrame(globalMessageCoursePoint, localCoursePoint, coursePointFields()).encode(w); err != nil {
		return err
	}
	for _, cp := range c.course.CoursePoints {
		pt, err := newSurfacePoint(cp.Lat, cp.Lon)
		if err != nil {
			return err
		}
		distCm, err := centimeters(cp.DistanceM)
		if err != nil {
			return err
		}
		elapsed := time.Duration(cp.DistanceM / c.options.speed * float64(time.Second))
		ts, err := newDateTime(c.options.startTime.Add(elapsed))
		if err != nil {
			return err
		}
		m := coursePointMessage{timestamp: ts, position: pt, distanceCm: distCm, pointType: cp.Type, name: cp.Name}
		if err := m.encode(localCoursePoint, w); err != nil {
			return err
		}
	}

	// Event(stop) reuses the event definition frame already on the wire.
	if err := (eventMessage{timestamp: startTime, eventType: eventTypeStop}).encode(localEvent, w); err != nil {
		return err
	}

	if err := newDefinitionFrame(globalMessageFileCreator, localFileCreator, fileCreatorFields()).encode(w); err != nil {
		return err
	}
	creator := fileCreatorMessage{softwareVersion: c.options.softwareVersion, hardwareVersion: c.options.hardwareVersion}
	return creator.encode(localFileCreator, w)
}

// getDataSize computes the exact byte length of the encoded body (excluding
// the 14-byte header with its CRC and the trailing 2-byte CRC), matching what Encode will
// actually write.
func (c *CourseFile) getDataSize() (int, error) {
	size := 0
	size += definitionMessageSize(len(fileIdFields())) + dataMessageSize(fileIdFields())
	size += definitionMessageSize(len(courseFields())) + dataMessageSize(courseFields())
	size += definitionMessageSize(len(lapFields())) + dataMessageSize(lapFields())
	size += definitionMessageSize(len(eventFields())) + dataMessageSize(eventFields())

	size += definitionMessageSize(len(recordFields()))
	size += dataMessageSize(recordFields()) * len(c.course.Records)

	size += definitionMessageSize(len(coursePointFields()))
	size += dataMessageSize(coursePointFields()) * len(c.course.CoursePoints)

	// event(stop) data frame only, definition already counted above.
	size += dataMessageSize(eventFields())

	size += definitionMessageSize(len(fileCreatorFields())) + dataMessageSize(fileCreatorFields())

	if size < 0 {
		return 0, fmt.Errorf("%w: computed negative data size", ErrIntegerEncoding)
	}
	return size, nil
}
