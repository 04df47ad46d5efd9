package memory

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/simaogato/banksynth/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataset(id string) *domain.Dataset {
	return &domain.Dataset{Stats: domain.GenerationStats{RunID: id}}
}

func TestDatasetStore_PutGet(t *testing.T) {
	store := NewDatasetStore(2)
	ds := dataset("run-1")
	store.Put(ds)

	got, err := store.Get("run-1")
	require.NoError(t, err)
	assert.Same(t, ds, got)

	_, err = store.Get("missing")
	assert.True(t, errors.Is(err, domain.ErrDatasetNotFound))
}

func TestDatasetStore_EvictsOldest(t *testing.T) {
	store := NewDatasetStore(2)
	store.Put(dataset("run-1"))
	store.Put(dataset("run-2"))
	store.Put(dataset("run-3"))

	_, err := store.Get("run-1")
	assert.True(t, errors.Is(err, domain.ErrDatasetNotFound))

	stats := store.List()
	require.Len(t, stats, 2)
	assert.Equal(t, "run-3", stats[0].RunID)
	assert.Equal(t, "run-2", stats[1].RunID)
}

func TestDatasetStore_ReplacingDoesNotEvict(t *testing.T) {
	store := NewDatasetStore(2)
	store.Put(dataset("run-1"))
	store.Put(dataset("run-2"))
	store.Put(dataset("run-2"))

	assert.Len(t, store.List(), 2)
	_, err := store.Get("run-1")
	assert.NoError(t, err)
}

func TestDatasetStore_DefaultCapacity(t *testing.T) {
	store := NewDatasetStore(0)
	for i := 0; i < DefaultCapacity+3; i++ {
		store.Put(dataset(fmt.Sprintf("run-%d", i)))
	}
	assert.Len(t, store.List(), DefaultCapacity)
}

func TestDatasetStore_ConcurrentAccess(t *testing.T) {
	store := NewDatasetStore(4)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			store.Put(dataset(fmt.Sprintf("run-%d", i)))
		}(i)
		go func() {
			defer wg.Done()
			_ = store.List()
		}()
	}
	wg.Wait()

	assert.Len(t, store.List(), 4)
}
