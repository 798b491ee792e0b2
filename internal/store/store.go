// Package store persists saved postings and insights in a document store.
package store

import (
	"context"
	"errors"

	"github.com/jobscout-in/jobscout/internal/models"
)

var (
	// ErrInvalidID means the storage identifier is syntactically malformed.
	ErrInvalidID = errors.New("store: invalid id")
	// ErrNotFound means the identifier is well-formed but matches nothing.
	ErrNotFound = errors.New("store: not found")
)

// SavedJob is a stored posting together with its storage identifier.
type SavedJob struct {
	StorageID      string `json:"_id" bson:"-"`
	models.Posting `bson:",inline"`
}

// SavedInsight is a stored insights report with its storage identifier.
type SavedInsight struct {
	StorageID          string `json:"_id" bson:"-"`
	models.JobInsights `bson:",inline"`
}

// Store is the persistence collaborator. Delete operations report how many
// records were removed (0 or 1) and distinguish a malformed identifier from
// one that is simply absent.
type Store interface {
	SaveJob(ctx context.Context, posting models.Posting) (string, error)
	ListJobs(ctx context.Context) ([]SavedJob, error)
	DeleteJob(ctx context.Context, id string) (int64, error)

	SaveInsight(ctx context.Context, insight models.JobInsights) (string, error)
	ListInsights(ctx context.Context) ([]SavedInsight, error)
	DeleteInsight(ctx context.Context, id string) (int64, error)
}
