package fit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrcVector(t *testing.T) {
	var c crc
	c.addBytes([]byte{0x0e, 0x10, 0xb2, 0x52, 0x88, 0x42, 0x00, 0x00, 0x2e, 0x46, 0x49, 0x54})
	assert.Equal(t, uint16(0xf94b), c.sum)
}

func TestCrcEmpty(t *testing.T) {
	var c crc
	assert.Equal(t, uint16(0), c.sum)
}
