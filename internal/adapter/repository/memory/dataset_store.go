package memory

import (
	"fmt"
	"sync"

	"github.com/simaogato/banksynth/internal/domain"
)

// DefaultCapacity is the number of datasets kept when no capacity is given
const DefaultCapacity = 8

// DatasetStore implements domain.DatasetStore in process memory.
// It keeps at most capacity datasets, evicting the oldest first.
type DatasetStore struct {
	mu       sync.RWMutex
	capacity int
	order    []string
	byID     map[string]*domain.Dataset
}

// NewDatasetStore creates a new DatasetStore; capacity <= 0 uses DefaultCapacity
func NewDatasetStore(capacity int) *DatasetStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &DatasetStore{
		capacity: capacity,
		order:    make([]string, 0, capacity),
		byID:     make(map[string]*domain.Dataset, capacity),
	}
}

// Put stores a dataset under its run id, evicting the oldest dataset when full
func (s *DatasetStore) Put(ds *domain.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := ds.Stats.RunID
	if _, exists := s.byID[id]; exists {
		s.byID[id] = ds
		return
	}

	if len(s.order) >= s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.byID, oldest)
	}

	s.order = append(s.order, id)
	s.byID[id] = ds
}

// Get retrieves a dataset by run id
func (s *DatasetStore) Get(runID string) (*domain.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ds, ok := s.byID[runID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDatasetNotFound, runID)
	}
	return ds, nil
}

// List returns the stats of every stored dataset, newest first
func (s *DatasetStore) List() []domain.GenerationStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make([]domain.GenerationStats, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		stats = append(stats, s.byID[s.order[i]].Stats)
	}
	return stats
}
