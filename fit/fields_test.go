package fit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemicircleNegative180HitsInt32Min(t *testing.T) {
	v, err := semicircle(-180)
	require.NoError(t, err)
	assert.Equal(t, int32(-1<<31), v)
}

func TestSemicirclePositive180OverflowsInt32(t *testing.T) {
	// +180 degrees maps to exactly 2^31 semicircles, one past math.MaxInt32.
	_, err := semicircle(180)
	require.ErrorIs(t, err, ErrNumCast)
}

func TestSemicircleZero(t *testing.T) {
	v, err := semicircle(0)
	require.NoError(t, err)
	assert.Equal(t, int32(0), v)
}

func TestCentimetersRoundsToNearest(t *testing.T) {
	v, err := centimeters(572863.004)
	require.NoError(t, err)
	assert.Equal(t, uint32(57286300), v)
}

func TestCentimetersRejectsNegative(t *testing.T) {
	_, err := centimeters(-1)
	require.Error(t, err)
}

func TestMillisecondsRoundsToNearest(t *testing.T) {
	v, err := milliseconds(1.0005)
	require.NoError(t, err)
	assert.Equal(t, uint32(1001), v)
}

func TestTruncateToCharBoundaryOnAscii(t *testing.T) {
	assert.Equal(t, "hello", truncateToCharBoundary("hello world", 5))
}

func TestTruncateToCharBoundaryBacksOffMultibyteRune(t *testing.T) {
	s := "café" // 'é' is 2 bytes in UTF-8
	got := truncateToCharBoundary(s, 4)
	assert.Equal(t, "caf", got)
	assert.True(t, len(got) <= 4)
}

func TestTruncateToCharBoundaryNoTruncationNeeded(t *testing.T) {
	assert.Equal(t, "hi", truncateToCharBoundary("hi", 10))
}
