package timeutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/tempo/internal/timeutil"
)

var now = time.Date(2019, time.December, 25, 19, 43, 27, 0, time.Local)

func TestParseInstant(t *testing.T) {
	testCases := []struct {
		name   string
		phrase string
		want   time.Time
	}{
		{
			name:   "absolute timestamp",
			phrase: "2019-12-24T19:43:00",
			want:   time.Date(2019, time.December, 24, 19, 43, 0, 0, time.Local),
		},
		{
			name:   "time of day",
			phrase: "09:00",
			want:   time.Date(2019, time.December, 25, 9, 0, 0, 0, time.Local),
		},
		{
			name:   "time of day with seconds",
			phrase: " 09:00:30 ",
			want:   time.Date(2019, time.December, 25, 9, 0, 30, 0, time.Local),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := timeutil.ParseInstant(tc.phrase, now)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "want %s, got %s", tc.want, got)
		})
	}
}

func TestParseInstantRelative(t *testing.T) {
	testCases := []struct {
		phrase string
		ago    time.Duration
	}{
		{phrase: "15min ago", ago: 15 * time.Minute},
		{phrase: "10 min ago", ago: 10 * time.Minute},
		{phrase: "2 hours ago", ago: 2 * time.Hour},
	}

	for _, tc := range testCases {
		t.Run(tc.phrase, func(t *testing.T) {
			got, err := timeutil.ParseInstant(tc.phrase, now)
			require.NoError(t, err)
			assert.WithinDuration(t, now.Add(-tc.ago), got, time.Minute)
		})
	}
}

func TestParseInstantInvalid(t *testing.T) {
	for _, phrase := range []string{"", "   "} {
		_, err := timeutil.ParseInstant(phrase, now)
		assert.Error(t, err)
	}
}

func TestSplitTimeClue(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		wantRest []string
		wantOK   bool
	}{
		{
			name:     "tags only",
			args:     []string{"foo", "bar"},
			wantRest: []string{"foo", "bar"},
		},
		{
			name:     "relative phrase",
			args:     []string{"15min", "ago", "foo"},
			wantRest: []string{"foo"},
			wantOK:   true,
		},
		{
			name:     "relative phrase without tags",
			args:     []string{"10", "min", "ago"},
			wantRest: []string{},
			wantOK:   true,
		},
		{
			name:     "time of day",
			args:     []string{"09:00", "foo"},
			wantRest: []string{"foo"},
			wantOK:   true,
		},
		{
			name:     "absolute then relative",
			args:     []string{"2019-12-25T19:43:00", "5", "min", "ago", "foo"},
			wantRest: []string{"5", "min", "ago", "foo"},
			wantOK:   true,
		},
		{
			name: "empty",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, rest, ok := timeutil.SplitTimeClue(tc.args, now)

			assert.Equal(t, tc.wantOK, ok)
			assert.ElementsMatch(t, tc.wantRest, rest)
		})
	}
}

func TestSplitTimeClueLeadingAbsoluteTime(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		want     time.Time
		wantRest []string
	}{
		{
			name:     "timestamp before a relative phrase",
			args:     []string{"2019-12-25T19:43:00", "5", "min", "ago", "foo"},
			want:     time.Date(2019, time.December, 25, 19, 43, 0, 0, time.Local),
			wantRest: []string{"5", "min", "ago", "foo"},
		},
		{
			name:     "time of day before a relative phrase",
			args:     []string{"11:00", "5", "min", "ago", "foo"},
			want:     time.Date(2019, time.December, 25, 11, 0, 0, 0, time.Local),
			wantRest: []string{"5", "min", "ago", "foo"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, rest, ok := timeutil.SplitTimeClue(tc.args, now)
			require.True(t, ok)
			assert.True(t, tc.want.Equal(got), "want %s, got %s", tc.want, got)
			assert.Equal(t, tc.wantRest, rest)

			end, tags, ok := timeutil.SplitTimeClue(rest, now)
			require.True(t, ok)
			assert.WithinDuration(t, now.Add(-5*time.Minute), end, time.Minute)
			assert.Equal(t, []string{"foo"}, tags)
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:02:00", timeutil.FormatDuration(2*time.Minute))
	assert.Equal(t, "26:01:05", timeutil.FormatDuration(26*time.Hour+65*time.Second))
	assert.Equal(t, "00:00:00", timeutil.FormatDuration(0))
	assert.Equal(t, "-00:00:30", timeutil.FormatDuration(-30*time.Second))
}

func TestPeriodRange(t *testing.T) {
	start, end := timeutil.PeriodRange(timeutil.PeriodToday, now)
	assert.Equal(t, time.Date(2019, time.December, 25, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2019, time.December, 26, 0, 0, 0, 0, time.Local), end)

	todayStart, todayEnd := timeutil.FixedClock{Time: now}.TodayRange()
	assert.Equal(t, todayStart, start)
	assert.Equal(t, todayEnd, end)

	start, end = timeutil.PeriodRange(timeutil.PeriodYesterday, now)
	assert.Equal(t, time.Date(2019, time.December, 24, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2019, time.December, 24, 23, 59, 59, 0, time.Local), end)

	start, _ = timeutil.PeriodRange(timeutil.Period7Days, now)
	assert.Equal(t, time.Date(2019, time.December, 19, 0, 0, 0, 0, time.Local), start)

	start, _ = timeutil.PeriodRange(timeutil.PeriodAllTime, now)
	assert.True(t, start.IsZero())
}

func TestClockTodayRange(t *testing.T) {
	c := timeutil.FixedClock{Time: now.Add(300 * time.Millisecond)}

	assert.True(t, now.Equal(c.Now()))

	start, end := c.TodayRange()
	assert.Equal(t, time.Date(2019, time.December, 25, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2019, time.December, 26, 0, 0, 0, 0, time.Local), end)
}
