package store

import (
	"maps"
	"slices"

	"github.com/ayoisaiah/tempo/internal/models"
)

// Memory keeps activities in memory. It assigns identifiers the same way as
// Client and is not safe for concurrent use.
type Memory struct {
	current    *models.OngoingActivity
	activities map[models.ActivityID]models.Activity
	nextID     models.ActivityID
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		activities: make(map[models.ActivityID]models.Activity),
	}
}

// WriteActivity stores the activity under the next identifier.
func (m *Memory) WriteActivity(
	activity models.Activity,
) (models.ActivityID, error) {
	id := m.nextID
	m.nextID++

	m.activities[id] = activity

	return id, nil
}

// FilterActivities returns the activities for which keep returns true, in
// identifier order.
func (m *Memory) FilterActivities(
	keep func(models.ActivityID, models.Activity) bool,
) ([]models.Entry, error) {
	entries := []models.Entry{}

	for _, id := range slices.Sorted(maps.Keys(m.activities)) {
		activity := m.activities[id]

		if keep(id, activity) {
			entries = append(entries, models.Entry{
				ID:       id,
				Activity: activity,
			})
		}
	}

	return entries, nil
}

// DeleteActivity removes the activity and returns it, or nil if id is
// unknown.
func (m *Memory) DeleteActivity(
	id models.ActivityID,
) (*models.Activity, error) {
	activity, ok := m.activities[id]
	if !ok {
		return nil, nil
	}

	delete(m.activities, id)

	return &activity, nil
}

// Current returns a copy of the ongoing activity, or nil.
func (m *Memory) Current() (*models.OngoingActivity, error) {
	if m.current == nil {
		return nil, nil
	}

	current := *m.current

	return &current, nil
}

// SetCurrent replaces the ongoing activity.
func (m *Memory) SetCurrent(activity models.OngoingActivity) error {
	m.current = &activity
	return nil
}

// ClearCurrent removes the ongoing activity.
func (m *Memory) ClearCurrent() error {
	m.current = nil
	return nil
}
