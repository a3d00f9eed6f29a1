package fit

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"unicode/utf8"
)

// fieldDefinition is one (field_number, size, base_type) triple inside a
// definition frame.
type fieldDefinition struct {
	FieldNumber byte
	Size        byte
	BaseType    byte
}

func (f fieldDefinition) encode(w io.Writer) error {
	_, err := w.Write([]byte{f.FieldNumber, f.Size, f.BaseType})
	return err
}

func definitionMessageSize(numFields int) int {
	return 6 + 3*numFields
}

func dataMessageSize(defs []fieldDefinition) int {
	sz := 1
	for _, d := range defs {
		sz += int(d.Size)
	}
	return sz
}

// writeStringField writes s left-justified into fieldSize bytes, truncating
// at a valid UTF-8 code-point boundary if necessary and zero-padding the
// rest.
func writeStringField(w io.Writer, s string, fieldSize int) error {
	st := truncateToCharBoundary(s, fieldSize-1)
	if _, err := io.WriteString(w, st); err != nil {
		return fmt.Errorf("%w: %v", ErrStringEncoding, err)
	}
	pad := make([]byte, fieldSize-len(st))
	if _, err := w.Write(pad); err != nil {
		return fmt.Errorf("%w: %v", ErrStringEncoding, err)
	}
	return nil
}

func truncateToCharBoundary(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}
	end := maxBytes
	for end > 0 && !utf8.RuneStart(s[end]) {
		end--
	}
	return s[:end]
}

// semicircle converts a latitude/longitude in degrees into the Garmin
// "semicircle" integer angular unit, where 2^31 semicircles = 180 degrees.
func semicircle(deg float64) (int32, error) {
	v := math.Round(deg * (1 << 31) / 180)
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %v degrees out of semicircle range", ErrNumCast, deg)
	}
	return int32(v), nil
}

// centimeters converts a distance in meters to whole centimeters.
func centimeters(meters float64) (uint32, error) {
	cm := math.Round(meters * 100)
	if cm < 0 || cm > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %v meters out of centimeter range", ErrNumCast, meters)
	}
	return uint32(cm), nil
}

// milliseconds converts a duration in seconds to whole milliseconds.
func milliseconds(seconds float64) (uint32, error) {
	ms := math.Round(seconds * 1000)
	if ms < 0 || ms > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %v seconds out of millisecond range", ErrNumCast, seconds)
	}
	return uint32(ms), nil
}

// surfacePoint is a latitude/longitude pair encoded in semicircles.
type surfacePoint struct {
	Lat, Lon int32
}

func newSurfacePoint(latDeg, lonDeg float64) (surfacePoint, error) {
	lat, err := semicircle(latDeg)
	if err != nil {
		return surfacePoint{}, err
	}
	lon, err := semicircle(lonDeg)
	if err != nil {
		return surfacePoint{}, err
	}
	return surfacePoint{Lat: lat, Lon: lon}, nil
}

func writeBE(w io.Writer, v interface{}) error {
	if err := binary.Write(w, binary.BigEndian, v); err != nil {
		return fmt.Errorf("%w: %v", ErrIntegerEncoding, err)
	}
	return nil
}
