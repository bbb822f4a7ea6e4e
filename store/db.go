package store

import (
	"time"

	"github.com/ayoisaiah/fast/internal/models"
)

// DB is the database storage interface.
type DB interface {
	// SaveFast stores a fast keyed by its start time. A fast with the same
	// start time is overwritten.
	SaveFast(f *models.Fast) error
	// GetFasts returns the fasts that were in progress at any point between
	// startTime and endTime. When tags are given, only fasts carrying at
	// least one of them are returned.
	GetFasts(startTime, endTime time.Time, tags []string) ([]*models.Fast, error)
	// GetFast retrieves the fast that started at the specified time
	GetFast(startTime time.Time) (*models.Fast, error)
	// DeleteFasts deletes the fasts that started at the specified times
	DeleteFasts(startTimes []time.Time) error
	// Open begins a database connection
	Open() error
	// Close ends the database connection
	Close() error
}
