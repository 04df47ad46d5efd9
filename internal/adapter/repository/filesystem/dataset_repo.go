package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/simaogato/banksynth/internal/adapter/export"
	"github.com/simaogato/banksynth/internal/domain"
)

// SinkName identifies the filesystem sink in run stats
const SinkName = "filesystem"

// DatasetRepository implements domain.DatasetSink on a local directory
type DatasetRepository struct {
	dir string
}

// NewDatasetRepository creates a new DatasetRepository writing into dir
func NewDatasetRepository(dir string) *DatasetRepository {
	return &DatasetRepository{dir: dir}
}

// Name identifies the sink
func (r *DatasetRepository) Name() string {
	return SinkName
}

// Dir returns the output directory
func (r *DatasetRepository) Dir() string {
	return r.dir
}

// Save writes all five tables in CSV and indented JSON, creating the directory if absent.
// Existing files of a previous run are overwritten.
func (r *DatasetRepository) Save(ctx context.Context, ds *domain.Dataset) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, table := range export.Tables(ds) {
		for _, format := range []export.Format{export.FormatCSV, export.FormatJSON} {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := r.writeFile(table, format); err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *DatasetRepository) writeFile(table export.Table, format export.Format) (err error) {
	path := filepath.Join(r.dir, table.FileName(format))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := export.Write(f, table, format); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
