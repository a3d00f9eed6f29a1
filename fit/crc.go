package fit

// Garmin's reference FIT CRC-16 table. See https://developer.garmin.com/fit/protocol/
var crcTable = [16]uint16{
	0x0000, 0xCC01, 0xD801, 0x1400, 0xF001, 0x3C00, 0x2800, 0xE401,
	0xA001, 0x6C00, 0x7800, 0xB401, 0x5000, 0x9C01, 0x8801, 0x4400,
}

// crc implements the Garmin FIT CRC-16 algorithm: a nibble-wise table lookup
// with an initial state of zero.
type crc struct {
	sum uint16
}

func (c *crc) addByte(b byte) {
	tmp := crcTable[c.sum&0x0F]
	c.sum = (c.sum >> 4) & 0x0FFF
	c.sum = c.sum ^ tmp ^ crcTable[b&0x0F]

	tmp = crcTable[c.sum&0x0F]
	c.sum = (c.sum >> 4) & 0x0FFF
	c.sum = c.sum ^ tmp ^ crcTable[b>>4]
}

func (c *crc) addBytes(b []byte) {
	for _, x := range b {
		c.addByte(x)
	}
}
