package fit

import (
	"fmt"
	"time"
)

// garminEpoch is the reference instant from which FIT date_time values are
// measured.
var garminEpoch = time.Date(1989, time.December, 31, 0, 0, 0, 0, time.UTC)

// dateTimeMin is the minimum value of a date_time as per the FIT global
// profile; values lower than this are reserved for relative offsets.
const dateTimeMin uint32 = 0x10000000

// dateTime is a FIT date_time value: seconds since garminEpoch, encoded
// big-endian as a u32.
type dateTime uint32

func newDateTime(t time.Time) (dateTime, error) {
	secs := t.Sub(garminEpoch).Seconds()
	if secs < float64(dateTimeMin) {
		return 0, fmt.Errorf("%w: %v predates the minimum encodable date_time", ErrDateTimeEncoding, t)
	}
	if secs > float64(^uint32(0)) {
		return 0, fmt.Errorf("%w: %v overflows a u32 date_time", ErrDateTimeEncoding, t)
	}
	return dateTime(uint32(secs)), nil
}
