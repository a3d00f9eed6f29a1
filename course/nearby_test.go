package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindNearbySegmentsWorkedExample(t *testing.T) {
	measurements := []float64{10, 8, 11, 7, 4, 2, 5, 7, 7, 8, 2, 1, 2, 1}
	got := FindNearbySegments(measurements, 5)
	assert.Equal(t, []int{5, 11}, got)
}

func TestFindNearbySegmentsEmptyInput(t *testing.T) {
	assert.Empty(t, FindNearbySegments(nil, 5))
}

func TestFindNearbySegmentsTrailingRunIncluded(t *testing.T) {
	got := FindNearbySegments([]float64{10, 3, 2}, 5)
	assert.Equal(t, []int{2}, got)
}

func TestFindNearbySegmentsTiesResolveEarliest(t *testing.T) {
	got := FindNearbySegments([]float64{3, 3, 10}, 5)
	assert.Equal(t, []int{0}, got)
}

func TestFindNearbySegmentsNothingWithinThreshold(t *testing.T) {
	assert.Empty(t, FindNearbySegments([]float64{10, 20, 30}, 5))
}
