package fit

import (
	"fmt"
	"io"
	"math"
)

// definitionFrame declares the layout of the data frames that follow it
// under the same local message type.
type definitionFrame struct {
	globalMessage    globalMessage
	localMessageType byte
	fields           []fieldDefinition
}

func newDefinitionFrame(gm globalMessage, localMessageType byte, fields []fieldDefinition) definitionFrame {
	return definitionFrame{globalMessage: gm, localMessageType: localMessageType, fields: fields}
}

func (d definitionFrame) encode(w io.Writer) error {
	if len(d.fields) > math.MaxUint8 {
		return fmt.Errorf("%w: too many field definitions", ErrIntegerEncoding)
	}

	header := []byte{
		0b0100_0000 | (d.localMessageType & 0x0F),
		0x00, // reserved
		0x01, // architecture = big endian
	}
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w: %v", ErrIo, err)
	}
	if err := writeBE(w, uint16(d.globalMessage)); err != nil {
		return err
	}
	if err := writeBE(w, byte(len(d.fields))); err != nil {
		return err
	}
	for _, f := range d.fields {
		if err := f.encode(w); err != nil {
			return fmt.Errorf("%w: %v", ErrIo, err)
		}
	}
	return nil
}
