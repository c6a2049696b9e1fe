package timeutil

import "time"

// Clock supplies the current time to the command-line layer.
type Clock interface {
	Now() time.Time
	// TodayRange returns local midnight today and local midnight tomorrow.
	TodayRange() (start, end time.Time)
}

// SystemClock reads the local wall clock with second resolution.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().Truncate(time.Second)
}

func (c SystemClock) TodayRange() (start, end time.Time) {
	return dayRange(c.Now())
}

// FixedClock always reports the same time.
type FixedClock struct {
	Time time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Time.Truncate(time.Second)
}

func (c FixedClock) TodayRange() (start, end time.Time) {
	return dayRange(c.Now())
}

func dayRange(t time.Time) (start, end time.Time) {
	start = RoundToStart(t)

	return start, start.AddDate(0, 0, 1)
}
