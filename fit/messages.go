package fit

import (
	"fmt"
	"io"
)

func fileIdFields() []fieldDefinition {
	return []fieldDefinition{
		{0, 1, 0},   // type
		{1, 2, 132}, // manufacturer
		{4, 4, 134}, // time_created
		{8, 14, 7},  // product_name
	}
}

type fileIdMessage struct {
	timeCreated dateTime
	productName string
}

func (m fileIdMessage) encode(localMessageType byte, w io.Writer) error {
	if _, err := w.Write([]byte{localMessageType & 0x0F}); err != nil {
		return fmt.Errorf("%w: %v", ErrIo, err)
	}
	if err := writeBE(w, byte(fileTypeCourse)); err != nil {
		return err
	}
	if err := writeBE(w, uint16(fileManufacturerDevelopment)); err != nil {
		return err
	}
	if err := writeBE(w, uint32(m.timeCreated)); err != nil {
		return err
	}
	return writeStringField(w, m.productName, 14)
}

func courseFields() []fieldDefinition {
	return []fieldDefinition{
		{5, 32, 7}, // name
		{4, 1, 0},  // sport
	}
}

type courseMessage struct {
	name  string
	sport Sport
}

func (m courseMessage) encode(localMessageType byte, w io.Writer) error {
	if _, err := w.Write([]byte{localMessageType & 0x0F}); err != nil {
		return fmt.Errorf("%w: %v", ErrIo, err)
	}
	if err := writeStringField(w, m.name, 32); err != nil {
		return err
	}
	return writeBE(w, byte(m.sport))
}

func lapFields() []fieldDefinition {
	return []fieldDefinition{
		{2, 4, 134},   // start_time
		{253, 4, 134}, // timestamp
		{7, 4, 134},   // total_elapsed_time
		{8, 4, 134},   // total_timer_time
		{9, 4, 134},   // total_distance
		{3, 4, 133},   // start_position_lat
		{4, 4, 133},   // start_position_long
		{5, 4, 133},   // end_position_lat
		{6, 4, 133},   // end_position_long
	}
}

type lapMessage struct {
	startTime     dateTime
	durationMs    uint32
	distanceCm    uint32
	startPosition surfacePoint
	endPosition   surfacePoint
}

func (m lapMessage) encode(localMessageType byte, w io.Writer) error {
	if _, err := w.Write([]byte{localMessageType & 0x0F}); err != nil {
		return fmt.Errorf("%w: %v", ErrIo, err)
	}
	// start_time is written for both the start_time and timestamp fields.
	if err := writeBE(w, uint32(m.startTime)); err != nil {
		return err
	}
	if err := writeBE(w, uint32(m.startTime)); err != nil {
		return err
	}
	// duration is written for both total_elapsed_time and total_timer_time.
	if err := writeBE(w, m.durationMs); err != nil {
		return err
	}
	if err := writeBE(w, m.durationMs); err != nil {
		return err
	}
	if err := writeBE(w, m.distanceCm); err != nil {
		return err
	}
	if err := writeBE(w, m.startPosition.Lat); err != nil {
		return err
	}
	if err := writeBE(w, m.startPosition.Lon); err != nil {
		return err
	}
	if err := writeBE(w, m.endPosition.Lat); err != nil {
		return err
	}
	return writeBE(w, m.endPosition.Lon)
}

func eventFields() []fieldDefinition {
	return []fieldDefinition{
		{253, 4, 134}, // timestamp
		{0, 1, 0},     // event
		{4, 1, 2},     // event_group
		{1, 1, 0},     // event_type
	}
}

type eventMessage struct {
	timestamp  dateTime
	eventGroup byte
	eventType  eventType
}

func (m eventMessage) encode(localMessageType byte, w io.Writer) error {
	if _, err := w.Write([]byte{localMessageType & 0x0F}); err != nil {
		return fmt.Errorf("%w: %v", ErrIo, err)
	}
	if err := writeBE(w, uint32(m.timestamp)); err != nil {
		return err
	}
	if err := writeBE(w, byte(eventTimer)); err != nil {
		return err
	}
	if err := writeBE(w, m.eventGroup); err != nil {
		return err
	}
	return writeBE(w, byte(m.eventType))
}

func recordFields() []fieldDefinition {
	return []fieldDefinition{
		{0, 4, 133},   // lat
		{1, 4, 133},   // lon
		{5, 4, 134},   // distance
		{253, 4, 134}, // timestamp
	}
}

type recordMessage struct {
	position   surfacePoint
	distanceCm uint32
	timestamp  dateTime
}

func (m recordMessage) encode(localMessageType byte, w io.Writer) error {
	if _, err := w.Write([]byte{localMessageType & 0x0F}); err != nil {
		return fmt.Errorf("%w: %v", ErrIo, err)
	}
	if err := writeBE(w, m.position.Lat); err != nil {
		return err
	}
	if err := writeBE(w, m.position.Lon); err != nil {
		return err
	}
	if err := writeBE(w, m.distanceCm); err != nil {
		return err
	}
	return writeBE(w, uint32(m.timestamp))
}

func coursePointFields() []fieldDefinition {
	return []fieldDefinition{
		{1, 4, 134}, // timestamp
		{2, 4, 133}, // lat
		{3, 4, 133}, // lon
		{4, 4, 134}, // distance
		{5, 1, 0},   // type
		{6, 16, 7},  // name
	}
}

type coursePointMessage struct {
	timestamp  dateTime
	position   surfacePoint
	distanceCm uint32
	pointType  CoursePointType
	name       string
}

func (m coursePointMessage) encode(localMessageType byte, w io.Writer) error {
	if _, err := w.Write([]byte{localMessageType & 0x0F}); err != nil {
		return fmt.Errorf("%w: %v", ErrIo, err)
	}
	if err := writeBE(w, uint32(m.timestamp)); err != nil {
		return err
	}
	if err := writeBE(w, m.position.Lat); err != nil {
		return err
	}
	if err := writeBE(w, m.position.Lon); err != nil {
		return err
	}
	if err := writeBE(w, m.distanceCm); err != nil {
		return err
	}
	if err := writeBE(w, byte(m.pointType)); err != nil {
		return err
	}
	return writeStringField(w, m.name, 16)
}

func fileCreatorFields() []fieldDefinition {
	return []fieldDefinition{
		{0, 2, 132}, // software_version
		{1, 1, 2},   // hardware_version
	}
}

type fileCreatorMessage struct {
	softwareVersion uint16
	hardwareVersion byte
}

func (m fileCreatorMessage) encode(localMessageType byte, w io.Writer) error {
	if _, err := w.Write([]byte{localMessageType & 0x0F}); err != nil {
		return fmt.Errorf("%w: %v", ErrIo, err)
	}
	if err := writeBE(w, m.softwareVersion); err != nil {
		return err
	}
	return writeBE(w, m.hardwareVersion)
}
