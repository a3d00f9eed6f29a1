package fit

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderEncodeWithChecksum(t *testing.T) {
	h, err := newFileHeader(17032)
	require.NoError(t, err)

	var buf bytes.Buffer
	sink := newCheckSummingWriter(&buf)
	require.NoError(t, h.encode(sink))
	_, err = sink.finish()
	require.NoError(t, err)

	want := []byte{0x0e, 0x10, 0xa6, 0x52, 0x88, 0x42, 0x00, 0x00, 0x2e, 0x46, 0x49, 0x54, 0x0b, 0xb9}
	require.Equal(t, want, buf.Bytes())
}

func TestHeaderRejectsNegativeDataSize(t *testing.T) {
	_, err := newFileHeader(-1)
	require.Error(t, err)
}
