package fit

import "time"

// FitCourseOptions controls the metadata written into a CourseFile beyond
// the geometry and course points themselves.
type FitCourseOptions struct {
	speed           float64
	startTime       time.Time
	sport           Sport
	productName     string
	softwareVersion uint16
	hardwareVersion byte
}

// DefaultFitCourseOptions returns the baseline metadata used when the
// caller does not override a field.
func DefaultFitCourseOptions() FitCourseOptions {
	return FitCourseOptions{
		speed:           8.0,
		startTime:       time.Date(2019, time.November, 23, 0, 0, 0, 0, time.UTC),
		sport:           SportCycling,
		productName:     "",
		softwareVersion: 0,
		hardwareVersion: 0,
	}
}

// FitCourseOption customizes a FitCourseOptions value.
type FitCourseOption func(*FitCourseOptions)

func WithSpeed(metresPerSecond float64) FitCourseOption {
	return func(o *FitCourseOptions) { o.speed = metresPerSecond }
}

func WithStartTime(t time.Time) FitCourseOption {
	return func(o *FitCourseOptions) { o.startTime = t }
}

func WithSport(sport Sport) FitCourseOption {
	return func(o *FitCourseOptions) { o.sport = sport }
}

func WithProductName(name string) FitCourseOption {
	return func(o *FitCourseOptions) { o.productName = name }
}

func WithSoftwareVersion(v uint16) FitCourseOption {
	return func(o *FitCourseOptions) { o.softwareVersion = v }
}

func WithHardwareVersion(v byte) FitCourseOption {
	return func(o *FitCourseOptions) { o.hardwareVersion = v }
}

func NewFitCourseOptions(opts ...FitCourseOption) FitCourseOptions {
	o := DefaultFitCourseOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
