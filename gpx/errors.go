package gpx

import "errors"

var (
	// ErrIo is returned when the underlying reader fails.
	ErrIo = errors.New("gpx: io error")
	// ErrSchema is returned when the document does not parse as GPX, or a
	// point in it fails GeoPoint's range invariant.
	ErrSchema = errors.New("gpx: malformed GPX document")
)
