package store

import (
	"context"
	"sort"
	"sync"

	"github.com/jobscout-in/jobscout/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-process Store used in tests and when the service runs
// without a MongoDB deployment configured. It validates identifiers with the
// same ObjectID syntax as the Mongo implementation so callers see identical
// error outcomes.
type Memory struct {
	mu       sync.Mutex
	jobs     map[string]models.Posting
	insights map[string]models.JobInsights
}

func NewMemory() *Memory {
	return &Memory{
		jobs:     map[string]models.Posting{},
		insights: map[string]models.JobInsights{},
	}
}

func (m *Memory) SaveJob(_ context.Context, posting models.Posting) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := primitive.NewObjectID().Hex()
	m.jobs[id] = posting
	return id, nil
}

func (m *Memory) ListJobs(_ context.Context) ([]SavedJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SavedJob, 0, len(m.jobs))
	for id, posting := range m.jobs {
		out = append(out, SavedJob{StorageID: id, Posting: posting})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StorageID < out[j].StorageID })
	return out, nil
}

func (m *Memory) DeleteJob(_ context.Context, id string) (int64, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, ErrInvalidID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.jobs[id]; !ok {
		return 0, ErrNotFound
	}
	delete(m.jobs, id)
	return 1, nil
}

func (m *Memory) SaveInsight(_ context.Context, insight models.JobInsights) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := primitive.NewObjectID().Hex()
	m.insights[id] = insight
	return id, nil
}

func (m *Memory) ListInsights(_ context.Context) ([]SavedInsight, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SavedInsight, 0, len(m.insights))
	for id, insight := range m.insights {
		out = append(out, SavedInsight{StorageID: id, JobInsights: insight})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StorageID < out[j].StorageID })
	return out, nil
}

func (m *Memory) DeleteInsight(_ context.Context, id string) (int64, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, ErrInvalidID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.insights[id]; !ok {
		return 0, ErrNotFound
	}
	delete(m.insights, id)
	return 1, nil
}
