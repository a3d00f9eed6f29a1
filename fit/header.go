package fit

import (
	"fmt"
	"io"
	"math"
)

// profileVersion is the FIT SDK profile version these message layouts were
// copied from.
const profileVersion uint16 = 21158

const protocolVersion10 byte = 0x10

// fileHeader is the 12-byte header body (before its trailing 2-byte CRC).
type fileHeader struct {
	dataSize uint32
}

func newFileHeader(dataSize int) (fileHeader, error) {
	if dataSize < 0 || dataSize > math.MaxUint32 {
		return fileHeader{}, fmt.Errorf("%w: data_size %d out of range", ErrIntegerEncoding, dataSize)
	}
	return fileHeader{dataSize: uint32(dataSize)}, nil
}

func (h fileHeader) encode(w io.Writer) error {
	buf := make([]byte, 12)
	buf[0] = 0x0E
	buf[1] = protocolVersion10
	buf[2] = byte(profileVersion & 0xFF)
	buf[3] = byte(profileVersion >> 8)
	buf[4] = byte(h.dataSize)
	buf[5] = byte(h.dataSize >> 8)
	buf[6] = byte(h.dataSize >> 16)
	buf[7] = byte(h.dataSize >> 24)
	copy(buf[8:12], ".FIT")
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("%w: %v", ErrIo, err)
	}
	return nil
}
