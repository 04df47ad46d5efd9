package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/simaogato/banksynth/internal/adapter/export"
	"github.com/simaogato/banksynth/internal/domain"
)

const zipContentType = "application/zip"

// ArchiveSink implements domain.DatasetSink by uploading the CSV and JSON archives
// of a dataset under "<run_id>/" in a bucket
type ArchiveSink struct {
	store  ObjectStore
	bucket string
}

// NewArchiveSink creates a new ArchiveSink
func NewArchiveSink(store ObjectStore, bucket string) *ArchiveSink {
	return &ArchiveSink{store: store, bucket: bucket}
}

// Name identifies the sink
func (s *ArchiveSink) Name() string {
	return "objectstore"
}

// Save uploads one zip archive per export format
func (s *ArchiveSink) Save(ctx context.Context, ds *domain.Dataset) error {
	if err := s.store.EnsureBucket(ctx, s.bucket); err != nil {
		return err
	}

	for _, format := range []export.Format{export.FormatCSV, export.FormatJSON} {
		data, err := export.BuildArchive(ds, format)
		if err != nil {
			return fmt.Errorf("failed to build %s archive: %w", format, err)
		}

		key := ObjectKey(ds, format)
		if err := s.store.Put(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), zipContentType); err != nil {
			return err
		}
	}

	return nil
}

// ObjectKey returns the object name of a dataset archive
func ObjectKey(ds *domain.Dataset, format export.Format) string {
	return path.Join(ds.Stats.RunID, export.ArchiveName(ds, format))
}
