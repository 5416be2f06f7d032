package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blockblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
)

// Client defines the interface for blob operations against a single container.
type Client interface {
	// UploadBuffer writes data to a block blob, replacing any existing blob.
	UploadBuffer(ctx context.Context, blobName string, data []byte, opts *blockblob.UploadBufferOptions) (blockblob.UploadBufferResponse, error)
	// DownloadStream opens a blob for reading.
	DownloadStream(ctx context.Context, blobName string, opts *blob.DownloadStreamOptions) (io.ReadCloser, error)
	// GetProperties fetches blob properties without transferring the body.
	GetProperties(ctx context.Context, blobName string, opts *blob.GetPropertiesOptions) (blob.GetPropertiesResponse, error)
	// DeleteBlob removes a blob.
	DeleteBlob(ctx context.Context, blobName string, opts *blob.DeleteOptions) error
	// ListBlobs lists blob names in whatever order the backend yields them.
	ListBlobs(ctx context.Context, opts *container.ListBlobsFlatOptions) ([]string, error)
}

// NewClient creates a new Azure container client from the SAS URL in the
// configuration. The SAS query string on that URL is the only credential;
// there is no account key or token exchange. No connection is made here:
// the SDK dials lazily, so a bad URL or expired token surfaces on the first
// operation, not at construction.
func NewClient(cfg Config) (Client, error) {
	client, err := container.NewClientWithNoCredential(cfg.SASURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create container client: %w", err)
	}

	return &azureClientWrapper{client: client}, nil
}

type azureClientWrapper struct {
	client *container.Client
}

func (c *azureClientWrapper) UploadBuffer(ctx context.Context, blobName string, data []byte, opts *blockblob.UploadBufferOptions) (blockblob.UploadBufferResponse, error) {
	return c.client.NewBlockBlobClient(blobName).UploadBuffer(ctx, data, opts)
}

func (c *azureClientWrapper) DownloadStream(ctx context.Context, blobName string, opts *blob.DownloadStreamOptions) (io.ReadCloser, error) {
	resp, err := c.client.NewBlobClient(blobName).DownloadStream(ctx, opts)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (c *azureClientWrapper) GetProperties(ctx context.Context, blobName string, opts *blob.GetPropertiesOptions) (blob.GetPropertiesResponse, error) {
	return c.client.NewBlobClient(blobName).GetProperties(ctx, opts)
}

func (c *azureClientWrapper) DeleteBlob(ctx context.Context, blobName string, opts *blob.DeleteOptions) error {
	_, err := c.client.NewBlobClient(blobName).Delete(ctx, opts)
	return err
}

func (c *azureClientWrapper) ListBlobs(ctx context.Context, opts *container.ListBlobsFlatOptions) ([]string, error) {
	pager := c.client.NewListBlobsFlatPager(opts)

	var names []string
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Segment.BlobItems {
			if item.Name == nil {
				continue
			}
			names = append(names, *item.Name)
		}
	}
	return names, nil
}
