package course

// FindNearbySegments consumes a sequence of waypoint-distance measurements
// in course order and returns the index, within each maximal contiguous run
// whose measurement is <= threshold, of the minimum measurement in that
// run. Ties within a run resolve to the earliest occurrence. A run
// extending to the end of the input is still emitted.
func FindNearbySegments(measurements []float64, threshold float64) []int {
	var result []int
	spanMinIdx := -1

	for i, m := range measurements {
		if m <= threshold {
			if spanMinIdx == -1 || m < measurements[spanMinIdx] {
				spanMinIdx = i
			}
		} else if spanMinIdx != -1 {
			result = append(result, spanMinIdx)
			spanMinIdx = -1
		}
	}
	if spanMinIdx != -1 {
		result = append(result, spanMinIdx)
	}
	return result
}
