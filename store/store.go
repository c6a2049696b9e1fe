// Package store persists the current activity and finished activities
package store

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
	berrors "go.etcd.io/bbolt/errors"

	"github.com/ayoisaiah/tempo/internal/models"
	"github.com/ayoisaiah/tempo/internal/osutil"
)

const (
	activityBucket = "activities"
	currentBucket  = "current"
)

var currentKey = []byte("current")

var errAlreadyRunning = errors.New(
	"is tempo already running? Only one instance can access the database at a time",
)

// Client is a BoltDB database client. It stores finished activities under
// monotonically increasing identifiers starting at zero. Identifiers of
// deleted activities are never reused.
type Client struct {
	*bolt.DB
}

// itob encodes an activity identifier as a sortable bucket key.
func itob(id models.ActivityID) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, id)

	return b
}

func btoi(b []byte) models.ActivityID {
	return binary.BigEndian.Uint64(b)
}

// WriteActivity stores a finished activity under a fresh identifier.
func (c *Client) WriteActivity(
	activity models.Activity,
) (models.ActivityID, error) {
	var id models.ActivityID

	value, err := json.Marshal(activity)
	if err != nil {
		return 0, fmt.Errorf("encoding activity: %w", err)
	}

	err = c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(activityBucket))

		seq, err := b.NextSequence()
		if err != nil {
			return err
		}

		id = seq - 1

		return b.Put(itob(id), value)
	})
	if err != nil {
		return 0, fmt.Errorf("writing activity: %w", err)
	}

	return id, nil
}

// FilterActivities returns the activities for which keep returns true in
// identifier order.
func (c *Client) FilterActivities(
	keep func(models.ActivityID, models.Activity) bool,
) ([]models.Entry, error) {
	entries := []models.Entry{}

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(activityBucket)).ForEach(func(k, v []byte) error {
			var activity models.Activity

			err := json.Unmarshal(v, &activity)
			if err != nil {
				return err
			}

			id := btoi(k)

			if keep(id, activity) {
				entries = append(entries, models.Entry{
					ID:       id,
					Activity: activity,
				})
			}

			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("reading activities: %w", err)
	}

	return entries, nil
}

// DeleteActivity removes an activity and returns it, or nil if no activity
// has the identifier.
func (c *Client) DeleteActivity(
	id models.ActivityID,
) (*models.Activity, error) {
	var deleted *models.Activity

	err := c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(activityBucket))
		key := itob(id)

		v := b.Get(key)
		if v == nil {
			return nil
		}

		var activity models.Activity

		err := json.Unmarshal(v, &activity)
		if err != nil {
			return err
		}

		deleted = &activity

		return b.Delete(key)
	})
	if err != nil {
		return nil, fmt.Errorf("deleting activity %d: %w", id, err)
	}

	return deleted, nil
}

// Current returns the ongoing activity or nil.
func (c *Client) Current() (*models.OngoingActivity, error) {
	var current *models.OngoingActivity

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(currentBucket)).Get(currentKey)
		if v == nil {
			return nil
		}

		var ongoing models.OngoingActivity

		err := json.Unmarshal(v, &ongoing)
		if err != nil {
			return err
		}

		current = &ongoing

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading current activity: %w", err)
	}

	return current, nil
}

// SetCurrent replaces the ongoing activity.
func (c *Client) SetCurrent(activity models.OngoingActivity) error {
	value, err := json.Marshal(activity)
	if err != nil {
		return fmt.Errorf("encoding current activity: %w", err)
	}

	err = c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(currentBucket)).Put(currentKey, value)
	})
	if err != nil {
		return fmt.Errorf("writing current activity: %w", err)
	}

	return nil
}

// ClearCurrent removes the ongoing activity.
func (c *Client) ClearCurrent() error {
	err := c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(currentBucket)).Delete(currentKey)
	})
	if err != nil {
		return fmt.Errorf("clearing current activity: %w", err)
	}

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	err := os.MkdirAll(filepath.Dir(pathToDB), osutil.DirPermission)
	if err != nil {
		return nil, err
	}

	db, err := bolt.Open(
		pathToDB,
		osutil.DBPermission,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, berrors.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(activityBucket))
		if err != nil {
			return err
		}

		_, err = tx.CreateBucketIfNotExists([]byte(currentBucket))

		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	slog.Debug("database opened", slog.String("path", dbPath))

	return &Client{
		db,
	}, nil
}
