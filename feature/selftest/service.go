package selftest

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"mediastore/core/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// probeKey is where the probe blob lands in the container. The nested
	// path doubles as a check that '/'-delimited keys behave like folders.
	probeKey = "test_folder/subfolder/hello_blob.txt"
	// probeContent is the payload round-tripped through the container.
	probeContent = "Hello, Azure Blob World! This is a test file."
	// listPrefix is the prefix the probe blob must be listed under.
	listPrefix = "test_folder/"
)

// Service runs a live end-to-end check of the storage adapter.
type Service struct {
	store  *storage.Store
	logger *zap.Logger
}

// NewService creates a new selftest service.
func NewService(store *storage.Store, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Run executes the check sequence against the configured container. The
// first failing step aborts the run and its error is returned. Local scratch
// files are removed unconditionally; the probe blob is removed by the delete
// step itself, so an aborted run can leave it behind.
func (s *Service) Run(ctx context.Context) error {
	logg := s.logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("container", s.store.Container()),
	)

	scratchDir, err := os.MkdirTemp("", "mediastore-selftest-")
	if err != nil {
		return fmt.Errorf("failed to create scratch dir: %w", err)
	}
	defer os.RemoveAll(scratchDir)

	localFile := filepath.Join(scratchDir, "hello_blob.txt")
	if err := os.WriteFile(localFile, []byte(probeContent), 0644); err != nil {
		return fmt.Errorf("failed to write probe file: %w", err)
	}
	logg.Info("Created local probe file", zap.String("path", localFile))

	key, err := s.store.UploadFromFile(ctx, localFile, probeKey)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	logg.Info("Uploaded probe blob", zap.String("key", key))

	exists, err := s.store.Exists(ctx, probeKey)
	if err != nil {
		return fmt.Errorf("existence check failed: %w", err)
	}
	if !exists {
		return fmt.Errorf("probe blob %q missing after upload", probeKey)
	}
	logg.Info("Probe blob exists", zap.String("key", probeKey))

	names, err := s.store.List(ctx, listPrefix)
	if err != nil {
		return fmt.Errorf("listing failed: %w", err)
	}
	if !slices.Contains(names, probeKey) {
		return fmt.Errorf("probe blob %q not in listing under %q", probeKey, listPrefix)
	}
	logg.Info("Probe blob listed under prefix", zap.String("prefix", listPrefix), zap.Int("blobs", len(names)))

	// The nested destination exercises recursive parent creation.
	downloadPath := filepath.Join(scratchDir, "downloads", "nested", "hello_blob.txt")
	if _, err := s.store.DownloadToFile(ctx, probeKey, downloadPath); err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	downloaded, err := os.ReadFile(downloadPath)
	if err != nil {
		return fmt.Errorf("failed to read downloaded file: %w", err)
	}
	if !bytes.Equal(downloaded, []byte(probeContent)) {
		return fmt.Errorf("content mismatch: uploaded %d bytes, downloaded %d bytes", len(probeContent), len(downloaded))
	}
	logg.Info("Downloaded content matches", zap.Int("bytes", len(downloaded)))

	logg.Info("Assembled blob URL", zap.String("url", s.store.URL(probeKey)))

	if !s.store.Delete(ctx, probeKey) {
		return fmt.Errorf("failed to delete probe blob %q", probeKey)
	}
	logg.Info("Deleted probe blob", zap.String("key", probeKey))

	// Deleting an absent blob must report failure, not raise: the delete
	// path collapses every error to a bool.
	if s.store.Delete(ctx, probeKey) {
		return fmt.Errorf("second delete of %q unexpectedly reported success", probeKey)
	}
	logg.Info("Second delete correctly reported failure", zap.String("key", probeKey))

	exists, err = s.store.Exists(ctx, probeKey)
	if err != nil {
		return fmt.Errorf("final existence check failed: %w", err)
	}
	if exists {
		return fmt.Errorf("probe blob %q still present after delete", probeKey)
	}
	logg.Info("Probe blob gone after delete", zap.String("key", probeKey))

	logg.Info("Selftest passed")
	return nil
}
