package app

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/maruel/natural"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tempo/internal/models"
	"github.com/ayoisaiah/tempo/internal/timeutil"
	"github.com/ayoisaiah/tempo/internal/ui"
	"github.com/ayoisaiah/tempo/report"
)

const (
	msgNoData = "No filtered data found."
)

// summaryFilter selects finished activities by start time and tags.
type summaryFilter struct {
	StartTime time.Time
	EndTime   time.Time
	Tags      []string
}

// keep reports whether an activity started within the filter's bounds
// (inclusive) and carries one of its tags.
func (f *summaryFilter) keep(_ models.ActivityID, a models.Activity) bool {
	if a.StartTime.Before(f.StartTime) || a.StartTime.After(f.EndTime) {
		return false
	}

	if len(f.Tags) == 0 {
		return true
	}

	for _, t := range a.Tags {
		if slices.Contains(f.Tags, t) {
			return true
		}
	}

	return false
}

// splitAndTrimTags splits a comma-separated tag string and trims whitespace.
func splitAndTrimTags(tags string) []string {
	split := strings.Split(tags, ",")

	trimmed := make([]string, 0, len(split))

	for _, tag := range split {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			trimmed = append(trimmed, tag)
		}
	}

	return trimmed
}

// newSummaryFilter builds a filter from the summary flags. Without a period or
// explicit bounds it covers today.
func (s *state) newSummaryFilter(ctx *cli.Context) (*summaryFilter, error) {
	f := &summaryFilter{}

	if ctx.String("tag") != "" {
		f.Tags = splitAndTrimTags(ctx.String("tag"))
	}

	now := s.clock.Now()

	period := timeutil.Period(strings.TrimSpace(ctx.String("period")))

	if period != "" {
		if !slices.Contains(timeutil.PeriodCollection, period) {
			periods := make([]string, len(timeutil.PeriodCollection))
			for i, p := range timeutil.PeriodCollection {
				periods[i] = string(p)
			}

			return nil, errInvalidPeriod.Fmt(strings.Join(periods, ", "))
		}

		f.StartTime, f.EndTime = timeutil.PeriodRange(period, now)

		return f, nil
	}

	start, end := ctx.String("start"), ctx.String("end")

	if start == "" && end == "" {
		f.StartTime, f.EndTime = s.clock.TodayRange()

		return f, nil
	}

	if start != "" {
		dateTime, err := timeutil.ParseInstant(start, now)
		if err != nil {
			return nil, err
		}

		f.StartTime = dateTime
	}

	if now.After(f.StartTime) {
		f.EndTime = now
	} else {
		f.EndTime = timeutil.RoundToEnd(f.StartTime)
	}

	if end != "" {
		dateTime, err := timeutil.ParseInstant(end, now)
		if err != nil {
			return nil, err
		}

		f.EndTime = dateTime
	}

	if f.EndTime.Before(f.StartTime) {
		return nil, errInvalidDateRange
	}

	return f, nil
}

// printSummaryTable prints the activities followed by the total time per tag.
func (s *state) printSummaryTable(w io.Writer, entries []models.Entry, showID bool) {
	header := []string{"TAGS", "START", "END", "DURATION"}
	if showID {
		header = append([]string{"ID"}, header...)
	}

	tableBody := make([][]string, 0, len(entries)+2)
	tableBody = append(tableBody, header)

	var total time.Duration

	tagTotals := make(map[string]time.Duration)

	for i := range entries {
		a := entries[i].Activity
		total += a.Duration()

		seen := make(map[string]bool)

		for _, tag := range a.Tags {
			if !seen[tag] {
				tagTotals[tag] += a.Duration()
				seen[tag] = true
			}
		}

		row := []string{
			a.TagString(),
			ui.FormatTime(a.StartTime, s.cfg.Display.TwentyFourHour),
			ui.FormatTime(a.EndTime, s.cfg.Display.TwentyFourHour),
			timeutil.FormatDuration(a.Duration()),
		}

		if showID {
			row = append([]string{fmt.Sprintf("%d", entries[i].ID)}, row...)
		}

		tableBody = append(tableBody, row)
	}

	footer := []string{ui.Highlight("TOTAL"), "", "", ui.Cyan(timeutil.FormatDuration(total))}
	if showID {
		footer = append([]string{""}, footer...)
	}

	tableBody = append(tableBody, footer)

	ui.PrintTable(tableBody, w)

	tags := make([]string, 0, len(tagTotals))
	for tag := range tagTotals {
		tags = append(tags, tag)
	}

	slices.SortFunc(tags, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		default:
			return 0
		}
	})

	tagBody := [][]string{{"TAG", "TOTAL"}}

	for _, tag := range tags {
		tagBody = append(tagBody, []string{
			ui.Magenta(tag),
			timeutil.FormatDuration(tagTotals[tag]),
		})
	}

	ui.PrintTable(tagBody, w)
}

// summaryAction lists the finished activities within a time period.
func (s *state) summaryAction(ctx *cli.Context) error {
	w := ctx.App.Writer

	f, err := s.newSummaryFilter(ctx)
	if err != nil {
		return err
	}

	svc, err := s.service()
	if err != nil {
		return err
	}

	entries, err := svc.FilterActivities(f.keep)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(entries)
		if err != nil {
			return err
		}

		fmt.Fprintln(w, string(b))

		return nil
	}

	if len(entries) == 0 {
		report.Info(w, msgNoData)
		return nil
	}

	s.printSummaryTable(w, entries, ctx.Bool("id"))

	return nil
}
