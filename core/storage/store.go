package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
)

// Store exposes blob operations scoped to a single container. It is a thin
// facade: every method is one synchronous call against the backend, with no
// retries, caching, or timeout handling at this layer. Cancellation and
// deadlines come from the caller's context.
type Store struct {
	client    Client
	sasURL    string
	sasToken  string
	container string
}

// NewStore creates a new Store on top of the given client.
func NewStore(client Client, cfg Config) *Store {
	return &Store{
		client:    client,
		sasURL:    cfg.SASURL,
		sasToken:  cfg.SASToken,
		container: cfg.Container,
	}
}

// Container returns the configured container name.
func (s *Store) Container() string {
	return s.container
}

// Upload writes data to key, replacing any existing blob. The backend does
// not distinguish created from overwritten, so neither does the return.
func (s *Store) Upload(ctx context.Context, key string, data []byte) (string, error) {
	if _, err := s.client.UploadBuffer(ctx, key, data, nil); err != nil {
		return "", fmt.Errorf("failed to upload blob %q: %w", key, err)
	}
	return key, nil
}

// UploadFromFile reads localPath into memory and uploads it to key.
// The whole file is buffered, so this is only suitable for small objects.
func (s *Store) UploadFromFile(ctx context.Context, localPath, key string) (string, error) {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", localPath, err)
	}
	return s.Upload(ctx, key, data)
}

// URL returns the access URL for key: the SAS URL stripped of its query
// string, then the key, then the SAS token. This is pure string assembly
// with no network call and no check that the blob exists. The URL's
// validity window is fixed when the container SAS is issued; there is no
// per-call expiry.
func (s *Store) URL(key string) string {
	base, _, _ := strings.Cut(s.sasURL, "?")
	return fmt.Sprintf("%s/%s?%s", base, key, s.sasToken)
}

// Delete removes the blob at key. It returns true on success and false on
// any failure; not-found, permission, and network errors all collapse to
// false, and the cause is discarded. Callers that need to know why a delete
// failed have no way to find out.
func (s *Store) Delete(ctx context.Context, key string) bool {
	if err := s.client.DeleteBlob(ctx, key, nil); err != nil {
		return false
	}
	return true
}

// Exists checks whether a blob exists at key. A missing blob is reported as
// false without an error; any other backend failure propagates.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.GetProperties(ctx, key, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check blob %q: %w", key, err)
	}
	return true, nil
}

// Download reads the whole blob at key into memory.
func (s *Store) Download(ctx context.Context, key string) ([]byte, error) {
	body, err := s.client.DownloadStream(ctx, key, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to download blob %q: %w", key, err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %q: %w", key, err)
	}
	return data, nil
}

// DownloadToFile downloads the blob at key to localPath, creating missing
// parent directories and overwriting any existing file. Returns localPath.
func (s *Store) DownloadToFile(ctx context.Context, key, localPath string) (string, error) {
	absPath, err := filepath.Abs(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", localPath, err)
	}
	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory for %q: %w", localPath, err)
	}

	data, err := s.Download(ctx, key)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(localPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %q: %w", localPath, err)
	}
	return localPath, nil
}

// List returns the names of all blobs in the container, optionally filtered
// to those starting with prefix. Ordering is backend-defined; callers must
// not rely on it.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	opts := &container.ListBlobsFlatOptions{}
	if prefix != "" {
		opts.Prefix = &prefix
	}

	names, err := s.client.ListBlobs(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list blobs: %w", err)
	}
	return names, nil
}
