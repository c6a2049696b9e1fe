// Package models defines tracked activities
package models

import (
	"strings"
	"time"

	"github.com/ayoisaiah/tempo/internal/apperr"
)

// DateTimeFormat is the layout used to parse and display absolute
// timestamps, e.g. 2019-12-25T18:43:00.
const DateTimeFormat = "2006-01-02T15:04:05"

// ErrInvalidInterval is returned when an activity would end before it starts.
var ErrInvalidInterval = &apperr.Error{
	Message: "invalid interval: end time %s is before start time %s",
}

type (
	// Tag is a free-form activity label.
	Tag = string

	// Tags holds the labels of an activity in the order they were given.
	Tags = []Tag

	// ActivityID identifies a finished activity in a store.
	ActivityID = uint64
)

// Instant truncates t to whole seconds.
func Instant(t time.Time) time.Time {
	return t.Truncate(time.Second)
}

// OngoingActivity is an activity that has been started but not yet stopped.
type OngoingActivity struct {
	StartTime time.Time `json:"start_time"`
	Tags      Tags      `json:"tags"`
}

// NewOngoingActivity returns an ongoing activity starting at start.
func NewOngoingActivity(start time.Time, tags Tags) OngoingActivity {
	return OngoingActivity{
		StartTime: Instant(start),
		Tags:      tags,
	}
}

// IntoActivity closes the ongoing activity at end.
func (o OngoingActivity) IntoActivity(end time.Time) (Activity, error) {
	return NewActivity(o.StartTime, end, o.Tags)
}

// Elapsed returns the time spent on the activity as of now.
func (o OngoingActivity) Elapsed(now time.Time) time.Duration {
	return Instant(now).Sub(o.StartTime)
}

// TagString joins the tags with single spaces.
func (o OngoingActivity) TagString() string {
	return strings.Join(o.Tags, " ")
}

// Activity is a finished activity. A zero-length interval is valid.
type Activity struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Tags      Tags      `json:"tags"`
}

// NewActivity returns a finished activity, or ErrInvalidInterval if end is
// before start.
func NewActivity(start, end time.Time, tags Tags) (Activity, error) {
	start, end = Instant(start), Instant(end)

	if end.Before(start) {
		return Activity{}, ErrInvalidInterval.Fmt(
			end.Format(DateTimeFormat),
			start.Format(DateTimeFormat),
		)
	}

	return Activity{
		StartTime: start,
		EndTime:   end,
		Tags:      tags,
	}, nil
}

// Duration returns the length of the activity.
func (a Activity) Duration() time.Duration {
	return a.EndTime.Sub(a.StartTime)
}

// TagString joins the tags with single spaces.
func (a Activity) TagString() string {
	return strings.Join(a.Tags, " ")
}

// Entry pairs a finished activity with its store identifier.
type Entry struct {
	Activity Activity   `json:"activity"`
	ID       ActivityID `json:"id"`
}
