// Package tracker maintains the current activity and converts it into a
// finished activity when it is stopped
package tracker

import (
	"log/slog"
	"time"

	"github.com/ayoisaiah/tempo/internal/models"
)

// CurrentActivitySlot holds at most one ongoing activity.
type CurrentActivitySlot interface {
	// Current returns the ongoing activity or nil if there is none.
	Current() (*models.OngoingActivity, error)
	// SetCurrent replaces the ongoing activity.
	SetCurrent(activity models.OngoingActivity) error
	// ClearCurrent removes the ongoing activity. It is not an error to clear
	// an empty slot.
	ClearCurrent() error
}

// FinishedActivityStore holds finished activities indexed by identifier.
type FinishedActivityStore interface {
	// WriteActivity persists the activity and returns its new identifier.
	WriteActivity(activity models.Activity) (models.ActivityID, error)
	// FilterActivities returns the stored activities for which keep returns
	// true, in identifier order.
	FilterActivities(
		keep func(models.ActivityID, models.Activity) bool,
	) ([]models.Entry, error)
	// DeleteActivity removes the activity and returns it, or nil if the
	// identifier is unknown.
	DeleteActivity(id models.ActivityID) (*models.Activity, error)
}

// Service enforces the single current activity and records finished ones.
// It assumes exclusive access to its storage for its lifetime.
type Service struct {
	finished FinishedActivityStore
	current  CurrentActivitySlot
}

// New returns a Service backed by the given storage.
func New(finished FinishedActivityStore, current CurrentActivitySlot) *Service {
	return &Service{
		finished: finished,
		current:  current,
	}
}

// CurrentActivity returns the ongoing activity or nil.
func (s *Service) CurrentActivity() (*models.OngoingActivity, error) {
	return s.current.Current()
}

// StartActivity stops the current activity at activity.StartTime, if there is
// one, and makes activity the current one.
func (s *Service) StartActivity(
	activity models.OngoingActivity,
) (models.OngoingActivity, error) {
	_, err := s.StopCurrentActivity(activity.StartTime)
	if err != nil {
		return models.OngoingActivity{}, err
	}

	started := models.NewOngoingActivity(activity.StartTime, activity.Tags)

	err = s.current.SetCurrent(started)
	if err != nil {
		return models.OngoingActivity{}, err
	}

	slog.Info(
		"activity started",
		slog.Time("start_time", started.StartTime),
		slog.Any("tags", started.Tags),
	)

	return started, nil
}

// StopCurrentActivity ends the current activity at t and records it. It
// returns nil if no activity is ongoing.
//
// The finished activity is written before the slot is cleared, so a failed
// write leaves the current activity in place.
func (s *Service) StopCurrentActivity(t time.Time) (*models.Activity, error) {
	ongoing, err := s.current.Current()
	if err != nil {
		return nil, err
	}

	if ongoing == nil {
		return nil, nil
	}

	finished, err := ongoing.IntoActivity(t)
	if err != nil {
		return nil, err
	}

	id, err := s.finished.WriteActivity(finished)
	if err != nil {
		return nil, err
	}

	err = s.current.ClearCurrent()
	if err != nil {
		return nil, err
	}

	slog.Info(
		"activity stopped",
		slog.Uint64("id", id),
		slog.Time("start_time", finished.StartTime),
		slog.Time("end_time", finished.EndTime),
	)

	return &finished, nil
}

// FilterActivities returns the finished activities for which keep returns
// true. The result is empty, not nil, when nothing matches.
func (s *Service) FilterActivities(
	keep func(models.ActivityID, models.Activity) bool,
) ([]models.Entry, error) {
	entries, err := s.finished.FilterActivities(keep)
	if err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []models.Entry{}
	}

	return entries, nil
}

// DeleteActivity removes a finished activity. It returns nil if id is unknown.
func (s *Service) DeleteActivity(id models.ActivityID) (*models.Activity, error) {
	deleted, err := s.finished.DeleteActivity(id)
	if err != nil {
		return nil, err
	}

	if deleted != nil {
		slog.Info("activity deleted", slog.Uint64("id", id))
	}

	return deleted, nil
}

// TrackActivity records an activity that has already finished. The current
// activity is left untouched.
func (s *Service) TrackActivity(activity models.Activity) (models.Activity, error) {
	tracked, err := models.NewActivity(
		activity.StartTime,
		activity.EndTime,
		activity.Tags,
	)
	if err != nil {
		return models.Activity{}, err
	}

	id, err := s.finished.WriteActivity(tracked)
	if err != nil {
		return models.Activity{}, err
	}

	slog.Info("activity tracked", slog.Uint64("id", id))

	return tracked, nil
}

// LastActivity returns the finished activity that ended most recently, or nil
// if none has been recorded. Ties go to the most recently written one.
func (s *Service) LastActivity() (*models.Entry, error) {
	entries, err := s.FilterActivities(
		func(models.ActivityID, models.Activity) bool { return true },
	)
	if err != nil {
		return nil, err
	}

	var last *models.Entry

	for i := range entries {
		e := entries[i]

		if last == nil || !e.Activity.EndTime.Before(last.Activity.EndTime) {
			last = &e
		}
	}

	return last, nil
}

// ContinueActivity starts a new activity at t with the tags of the last
// finished activity. It returns nil if there is nothing to continue from.
func (s *Service) ContinueActivity(t time.Time) (*models.OngoingActivity, error) {
	last, err := s.LastActivity()
	if err != nil {
		return nil, err
	}

	if last == nil {
		return nil, nil
	}

	started, err := s.StartActivity(
		models.NewOngoingActivity(t, last.Activity.Tags),
	)
	if err != nil {
		return nil, err
	}

	return &started, nil
}
