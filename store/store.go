// Package store connects to the data store and manages the fasting history
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"slices"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/fast/internal/models"
	"github.com/ayoisaiah/fast/internal/timeutil"
)

const (
	fastBucket = "fasts"
	metaBucket = "meta"
)

var (
	errFastRunning = errors.New(
		"is fast already running? Only one instance can be active at a time",
	)
	errFastNotFound = errors.New("no fast started at the specified time")
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
	path string
}

// SaveFast stores a fast keyed by its start time.
func (c *Client) SaveFast(f *models.Fast) error {
	value, err := json.Marshal(f)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(fastBucket)).Put(timeutil.ToKey(f.StartTime), value)
	})
}

// GetFast retrieves a single fast.
func (c *Client) GetFast(startTime time.Time) (*models.Fast, error) {
	var f models.Fast

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(fastBucket)).Get(timeutil.ToKey(startTime))
		if b == nil {
			return errFastNotFound
		}

		return json.Unmarshal(b, &f)
	})
	if err != nil {
		return nil, err
	}

	return &f, nil
}

// GetFasts retrieves the fasts that overlap the given window.
func (c *Client) GetFasts(
	startTime, endTime time.Time,
	tags []string,
) ([]*models.Fast, error) {
	var fasts []*models.Fast

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(fastBucket)).Cursor()
		minKey := timeutil.ToKey(startTime)
		maxKey := timeutil.ToKey(endTime)

		// fasts can last days, so one that started before the window may
		// still have been in progress inside it
		var pk, pv []byte
		if k, _ := cur.Seek(minKey); k == nil {
			pk, pv = cur.Last()
		} else {
			pk, pv = cur.Prev()
		}

		k, v := cur.Seek(minKey)

		if pk != nil {
			var prev models.Fast

			err := json.Unmarshal(pv, &prev)
			if err != nil {
				return err
			}

			if prev.EndTime.After(startTime) {
				k, v = cur.Seek(pk)
			}
		}

		for ; k != nil && bytes.Compare(k, maxKey) <= 0; k, v = cur.Next() {
			var f models.Fast

			err := json.Unmarshal(v, &f)
			if err != nil {
				return err
			}

			if len(tags) != 0 && !hasAnyTag(f.Tags, tags) {
				continue
			}

			fasts = append(fasts, &f)
		}

		return nil
	})

	return fasts, err
}

func hasAnyTag(have, want []string) bool {
	for _, t := range have {
		if slices.Contains(want, t) {
			return true
		}
	}

	return false
}

// DeleteFasts removes the fasts that started at the specified times.
func (c *Client) DeleteFasts(startTimes []time.Time) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(fastBucket))

		for _, t := range startTimes {
			err := b.Delete(timeutil.ToKey(t))
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// Open reopens the database after it was closed.
func (c *Client) Open() error {
	db, err := openDB(c.path)
	if err != nil {
		return err
	}

	c.DB = db

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errFastRunning
		}

		return nil, err
	}

	return db, nil
}

// Locked reports whether the database at dbPath is held by a running
// instance of the timer.
func Locked(dbPath string) (bool, error) {
	db, err := bolt.Open(dbPath, 0o600, &bolt.Options{
		Timeout:  100 * time.Millisecond,
		ReadOnly: true,
	})
	if err == nil {
		return false, db.Close()
	}

	// a lock held by another process surfaces as a timeout
	if errors.Is(err, bolt.ErrTimeout) {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(fastBucket))
		if err != nil {
			return err
		}

		_, err = tx.CreateBucketIfNotExists([]byte(metaBucket))
		if err != nil {
			return err
		}

		return migrate(tx)
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		DB:   db,
		path: dbPath,
	}, nil
}
