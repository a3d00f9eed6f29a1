package fit

import "errors"

// Sentinel errors identifying the FIT encoder's failure taxonomy. All are
// fatal: none are retried or swallowed by the encoder.
var (
	ErrIo              = errors.New("fit: io error")
	ErrIntegerEncoding = errors.New("fit: integer encoding error")
	ErrNumCast         = errors.New("fit: numeric cast out of range")
	ErrStringEncoding  = errors.New("fit: string encoding error")
	ErrDateTimeEncoding = errors.New("fit: date_time encoding error")
)

// EncodeError wraps a lower-level error with the FIT encoding layer that
// produced it, so callers can identify where in the pipeline a failure
// originated.
type EncodeError struct {
	Op  string
	Err error
}

func (e *EncodeError) Error() string {
	return "fit: " + e.Op + ": " + e.Err.Error()
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
