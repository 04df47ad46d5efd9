package objectstore

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/simaogato/banksynth/internal/adapter/export"
	"github.com/simaogato/banksynth/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockObjectStore is a mock implementation of ObjectStore for testing
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) EnsureBucket(ctx context.Context, bucket string) error {
	args := m.Called(ctx, bucket)
	return args.Error(0)
}

func (m *MockObjectStore) Put(ctx context.Context, bucket, obj string, reader io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, bucket, obj, reader, size, contentType)
	return args.Error(0)
}

func dataset() *domain.Dataset {
	return &domain.Dataset{Stats: domain.GenerationStats{RunID: "01JAAAAAAAAAAAAAAAAAAAAAAA"}}
}

func TestArchiveSink_UploadsBothFormats(t *testing.T) {
	ctx := context.Background()
	store := new(MockObjectStore)
	ds := dataset()

	store.On("EnsureBucket", ctx, "datasets").Return(nil)
	store.On("Put", ctx, "datasets", "01JAAAAAAAAAAAAAAAAAAAAAAA/banking_data_01JAAAAAAAAAAAAAAAAAAAAAAA_csv.zip",
		mock.Anything, mock.AnythingOfType("int64"), "application/zip").Return(nil)
	store.On("Put", ctx, "datasets", "01JAAAAAAAAAAAAAAAAAAAAAAA/banking_data_01JAAAAAAAAAAAAAAAAAAAAAAA_json.zip",
		mock.Anything, mock.AnythingOfType("int64"), "application/zip").Return(nil)

	sink := NewArchiveSink(store, "datasets")
	assert.NoError(t, sink.Save(ctx, ds))
	assert.Equal(t, "objectstore", sink.Name())

	store.AssertExpectations(t)
	store.AssertNumberOfCalls(t, "Put", 2)
}

func TestArchiveSink_BucketFailureStopsUpload(t *testing.T) {
	ctx := context.Background()
	store := new(MockObjectStore)
	store.On("EnsureBucket", ctx, "datasets").Return(errors.New("connection refused"))

	err := NewArchiveSink(store, "datasets").Save(ctx, dataset())

	assert.EqualError(t, err, "connection refused")
	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestArchiveSink_UploadFailureIsReturned(t *testing.T) {
	ctx := context.Background()
	store := new(MockObjectStore)
	store.On("EnsureBucket", ctx, "datasets").Return(nil)
	store.On("Put", ctx, "datasets", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("access denied")).Once()

	err := NewArchiveSink(store, "datasets").Save(ctx, dataset())

	assert.EqualError(t, err, "access denied")
	store.AssertNumberOfCalls(t, "Put", 1)
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "01JAAAAAAAAAAAAAAAAAAAAAAA/banking_data_01JAAAAAAAAAAAAAAAAAAAAAAA_json.zip", ObjectKey(dataset(), export.FormatJSON))
}

func TestNewMinioObjectStore_RejectsBadEndpoint(t *testing.T) {
	_, err := NewMinioObjectStore(Options{Endpoint: "localhost:9000/with/path"})
	assert.Error(t, err)
}
