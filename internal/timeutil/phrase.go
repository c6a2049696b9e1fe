package timeutil

import (
	"regexp"
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"

	"github.com/ayoisaiah/tempo/internal/apperr"
	"github.com/ayoisaiah/tempo/internal/models"
)

const agoKeyword = "ago"

var errInvalidTimePhrase = &apperr.Error{
	Message: "unable to understand the time %q (try 2019-12-25T19:43:00, 09:00 or '15min ago')",
}

// clockLayouts are times of day that refer to the current date.
var clockLayouts = []string{
	"15:04:05",
	"15:04",
}

// unitBoundary splits glued amounts and units such as "15min".
var unitBoundary = regexp.MustCompile(`(\d)([[:alpha:]])`)

// ParseInstant resolves a time phrase relative to now. It accepts absolute
// timestamps in models.DateTimeFormat, a time of day for the current date,
// and natural language phrases such as "15min ago" or "yesterday 17:00".
func ParseInstant(phrase string, now time.Time) (time.Time, error) {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return time.Time{}, errInvalidTimePhrase.Fmt(phrase)
	}

	if t, ok := parseAbsolute(phrase, now); ok {
		return t, nil
	}

	cfg := &dps.Configuration{
		CurrentTime: now,
	}

	dt, err := dps.Parse(cfg, unitBoundary.ReplaceAllString(phrase, "$1 $2"))
	if err != nil || dt.Time.IsZero() {
		return time.Time{}, errInvalidTimePhrase.Fmt(phrase)
	}

	return models.Instant(dt.Time.In(now.Location())), nil
}

// parseAbsolute parses a full timestamp or a time of day.
func parseAbsolute(phrase string, now time.Time) (time.Time, bool) {
	t, err := time.ParseInLocation(models.DateTimeFormat, phrase, now.Location())
	if err == nil {
		return t, true
	}

	for _, layout := range clockLayouts {
		t, err = time.Parse(layout, phrase)
		if err != nil {
			continue
		}

		return time.Date(
			now.Year(),
			now.Month(),
			now.Day(),
			t.Hour(),
			t.Minute(),
			t.Second(),
			0,
			now.Location(),
		), true
	}

	return time.Time{}, false
}

// SplitTimeClue separates a leading time phrase from the words that follow
// it. An absolute time in the first word wins, otherwise the words up to the
// first "ago" are tried as a relative phrase. If no time phrase leads args, ok
// is false and rest is args.
func SplitTimeClue(
	args []string,
	now time.Time,
) (t time.Time, rest []string, ok bool) {
	if len(args) == 0 {
		return time.Time{}, args, false
	}

	if t, ok := parseAbsolute(args[0], now); ok {
		return t, args[1:], true
	}

	for i, arg := range args {
		if !strings.EqualFold(arg, agoKeyword) {
			continue
		}

		t, err := ParseInstant(strings.Join(args[:i+1], " "), now)
		if err == nil {
			return t, args[i+1:], true
		}

		break
	}

	return time.Time{}, args, false
}
