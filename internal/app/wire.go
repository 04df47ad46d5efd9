package app

import (
	"fmt"

	"github.com/simaogato/banksynth/internal/adapter/objectstore"
	"github.com/simaogato/banksynth/internal/adapter/repository/filesystem"
	"github.com/simaogato/banksynth/internal/config"
	"github.com/simaogato/banksynth/internal/domain"
	"go.uber.org/zap"
)

// NewLogger builds a zap logger at the configured level.
// development selects the console encoder used by the CLI.
func NewLogger(cfg config.LogConfig, development bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(cfg.ZapLevel())

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// BuildSinks returns the filesystem sink and, when configured, the object-store sink
func BuildSinks(cfg *config.Config, logger *zap.Logger) ([]domain.DatasetSink, error) {
	sinks := []domain.DatasetSink{filesystem.NewDatasetRepository(cfg.Output.Dir)}

	if !cfg.ObjectStore.Enabled() {
		return sinks, nil
	}

	store, err := objectstore.NewMinioObjectStore(objectstore.Options{
		Endpoint:  cfg.ObjectStore.Endpoint,
		AccessKey: cfg.ObjectStore.AccessKey,
		SecretKey: cfg.ObjectStore.SecretKey,
		UseSSL:    cfg.ObjectStore.UseSSL,
		Region:    cfg.ObjectStore.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object store: %w", err)
	}

	logger.Info("object store sink enabled",
		zap.String("endpoint", cfg.ObjectStore.Endpoint),
		zap.String("bucket", cfg.ObjectStore.Bucket),
	)
	return append(sinks, objectstore.NewArchiveSink(store, cfg.ObjectStore.Bucket)), nil
}
