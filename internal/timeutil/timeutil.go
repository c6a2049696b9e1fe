// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"time"
)

type Period string

const (
	PeriodAllTime   Period = "all-time"
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period14Days    Period = "14days"
	Period30Days    Period = "30days"
	Period90Days    Period = "90days"
	Period180Days   Period = "180days"
	Period365Days   Period = "365days"
)

var Range = map[Period]int{
	PeriodAllTime:   0,
	PeriodToday:     0,
	PeriodYesterday: -1,
	Period7Days:     -6,
	Period14Days:    -13,
	Period30Days:    -29,
	Period90Days:    -89,
	Period180Days:   -179,
	Period365Days:   -364,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	PeriodYesterday,
	Period7Days,
	Period14Days,
	Period30Days,
	Period90Days,
	Period180Days,
	Period365Days,
}

// FormatDuration renders d as HH:MM:SS. Hours are not capped at 24.
func FormatDuration(d time.Duration) string {
	secs := int(d.Round(time.Second).Seconds())

	sign := ""
	if secs < 0 {
		sign = "-"
		secs = -secs
	}

	return fmt.Sprintf(
		"%s%02d:%02d:%02d",
		sign,
		secs/3600,
		secs%3600/60,
		secs%60,
	)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// PeriodRange returns the start and end time of the period relative to now.
// All time starts at the zero time. Today matches Clock.TodayRange and ends at
// the next midnight.
func PeriodRange(period Period, now time.Time) (start, end time.Time) {
	start = RoundToStart(now)

	end = RoundToEnd(now)

	//nolint:exhaustive // other cases covered by default
	switch period {
	case PeriodToday:
		return dayRange(now)
	case PeriodYesterday:
		start = now.AddDate(0, 0, Range[period])
		start = RoundToStart(start)
		end = RoundToEnd(start)

		return
	case PeriodAllTime:
		start = time.Time{}
		return
	default:
		start = now.AddDate(0, 0, Range[period])
		start = RoundToStart(start)
	}

	return
}
