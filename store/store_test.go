package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/tempo/internal/models"
	"github.com/ayoisaiah/tempo/internal/tracker"
	"github.com/ayoisaiah/tempo/store"
)

type backend interface {
	tracker.FinishedActivityStore
	tracker.CurrentActivitySlot
}

func newClient(t *testing.T) backend {
	t.Helper()

	c, err := store.NewClient(filepath.Join(t.TempDir(), "data", "tempo.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func newMemory(t *testing.T) backend {
	t.Helper()

	return store.NewMemory()
}

var backends = map[string]func(t *testing.T) backend{
	"bolt":   newClient,
	"memory": newMemory,
}

var base = time.Date(2019, time.December, 25, 19, 43, 0, 0, time.UTC)

func activity(t *testing.T, startMin, endMin int, tags ...string) models.Activity {
	t.Helper()

	a, err := models.NewActivity(
		base.Add(time.Duration(startMin)*time.Minute),
		base.Add(time.Duration(endMin)*time.Minute),
		tags,
	)
	require.NoError(t, err)

	return a
}

func all(models.ActivityID, models.Activity) bool { return true }

func TestWriteAssignsMonotonicIDs(t *testing.T) {
	for name, newBackend := range backends {
		t.Run(name, func(t *testing.T) {
			b := newBackend(t)

			for want := range models.ActivityID(3) {
				id, err := b.WriteActivity(activity(t, 0, 1, "a"))
				require.NoError(t, err)
				assert.Equal(t, want, id)
			}

			deleted, err := b.DeleteActivity(2)
			require.NoError(t, err)
			require.NotNil(t, deleted)

			id, err := b.WriteActivity(activity(t, 0, 1, "b"))
			require.NoError(t, err)
			assert.Equal(t, models.ActivityID(3), id)
		})
	}
}

func TestFilterActivities(t *testing.T) {
	for name, newBackend := range backends {
		t.Run(name, func(t *testing.T) {
			b := newBackend(t)

			first := activity(t, 0, 2, "foo")
			second := activity(t, 10, 20, "bar", "baz")
			third := activity(t, 30, 30, "foo")

			for _, a := range []models.Activity{first, second, third} {
				_, err := b.WriteActivity(a)
				require.NoError(t, err)
			}

			entries, err := b.FilterActivities(all)
			require.NoError(t, err)

			want := []models.Entry{
				{ID: 0, Activity: first},
				{ID: 1, Activity: second},
				{ID: 2, Activity: third},
			}

			if diff := cmp.Diff(want, entries); diff != "" {
				t.Fatalf("FilterActivities() mismatch (-want +got):\n%s", diff)
			}

			tagged, err := b.FilterActivities(
				func(_ models.ActivityID, a models.Activity) bool {
					return a.Tags[0] == "foo"
				},
			)
			require.NoError(t, err)

			want = []models.Entry{
				{ID: 0, Activity: first},
				{ID: 2, Activity: third},
			}

			if diff := cmp.Diff(want, tagged); diff != "" {
				t.Fatalf("FilterActivities() mismatch (-want +got):\n%s", diff)
			}

			none, err := b.FilterActivities(
				func(models.ActivityID, models.Activity) bool { return false },
			)
			require.NoError(t, err)
			assert.NotNil(t, none)
			assert.Empty(t, none)
		})
	}
}

func TestDeleteActivity(t *testing.T) {
	for name, newBackend := range backends {
		t.Run(name, func(t *testing.T) {
			b := newBackend(t)

			a := activity(t, 0, 5, "foo")

			id, err := b.WriteActivity(a)
			require.NoError(t, err)

			missing, err := b.DeleteActivity(42)
			require.NoError(t, err)
			assert.Nil(t, missing)

			deleted, err := b.DeleteActivity(id)
			require.NoError(t, err)
			require.NotNil(t, deleted)

			if diff := cmp.Diff(a, *deleted); diff != "" {
				t.Fatalf("DeleteActivity() mismatch (-want +got):\n%s", diff)
			}

			entries, err := b.FilterActivities(all)
			require.NoError(t, err)
			assert.Empty(t, entries)

			again, err := b.DeleteActivity(id)
			require.NoError(t, err)
			assert.Nil(t, again)
		})
	}
}

func TestCurrentSlot(t *testing.T) {
	for name, newBackend := range backends {
		t.Run(name, func(t *testing.T) {
			b := newBackend(t)

			current, err := b.Current()
			require.NoError(t, err)
			assert.Nil(t, current)

			require.NoError(t, b.ClearCurrent())

			ongoing := models.NewOngoingActivity(base, models.Tags{"foo"})
			require.NoError(t, b.SetCurrent(ongoing))

			current, err = b.Current()
			require.NoError(t, err)
			require.NotNil(t, current)

			if diff := cmp.Diff(ongoing, *current); diff != "" {
				t.Fatalf("Current() mismatch (-want +got):\n%s", diff)
			}

			replacement := models.NewOngoingActivity(base.Add(time.Hour), models.Tags{"bar"})
			require.NoError(t, b.SetCurrent(replacement))

			current, err = b.Current()
			require.NoError(t, err)
			require.NotNil(t, current)
			assert.Equal(t, models.Tags{"bar"}, current.Tags)

			require.NoError(t, b.ClearCurrent())

			current, err = b.Current()
			require.NoError(t, err)
			assert.Nil(t, current)
		})
	}
}

func TestClientPersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tempo.db")

	c, err := store.NewClient(dbPath)
	require.NoError(t, err)

	a := activity(t, 0, 2, "foo")

	_, err = c.WriteActivity(a)
	require.NoError(t, err)

	require.NoError(t, c.SetCurrent(models.NewOngoingActivity(base, models.Tags{"bar"})))
	require.NoError(t, c.Close())

	c, err = store.NewClient(dbPath)
	require.NoError(t, err)

	defer c.Close()

	entries, err := c.FilterActivities(all)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	if diff := cmp.Diff(a, entries[0].Activity); diff != "" {
		t.Fatalf("reopened activity mismatch (-want +got):\n%s", diff)
	}

	current, err := c.Current()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, models.Tags{"bar"}, current.Tags)
}

func TestClientIsExclusive(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tempo.db")

	c, err := store.NewClient(dbPath)
	require.NoError(t, err)

	defer c.Close()

	_, err = store.NewClient(dbPath)
	assert.ErrorContains(t, err, "already running")
}
