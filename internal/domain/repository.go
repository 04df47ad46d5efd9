package domain

import "context"

// DatasetSink defines the interface for persisting a completed dataset
type DatasetSink interface {
	// Name identifies the sink in stats and logs
	Name() string

	// Save persists every table of the dataset
	Save(ctx context.Context, ds *Dataset) error
}

// DatasetStore defines the interface for holding generated datasets for later retrieval
type DatasetStore interface {
	// Put stores a dataset under its run id
	Put(ds *Dataset)

	// Get retrieves a dataset by run id
	// Returns ErrDatasetNotFound if no dataset matches
	Get(runID string) (*Dataset, error)

	// List returns the stats of every stored dataset, newest first
	List() []GenerationStats
}
