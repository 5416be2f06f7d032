package mocks

import (
	"context"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blockblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

func (m *Client) UploadBuffer(ctx context.Context, blobName string, data []byte, opts *blockblob.UploadBufferOptions) (blockblob.UploadBufferResponse, error) {
	args := m.Called(ctx, blobName, data, opts)
	return args.Get(0).(blockblob.UploadBufferResponse), args.Error(1)
}

func (m *Client) DownloadStream(ctx context.Context, blobName string, opts *blob.DownloadStreamOptions) (io.ReadCloser, error) {
	args := m.Called(ctx, blobName, opts)
	if body, ok := args.Get(0).(io.ReadCloser); ok {
		return body, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) GetProperties(ctx context.Context, blobName string, opts *blob.GetPropertiesOptions) (blob.GetPropertiesResponse, error) {
	args := m.Called(ctx, blobName, opts)
	return args.Get(0).(blob.GetPropertiesResponse), args.Error(1)
}

func (m *Client) DeleteBlob(ctx context.Context, blobName string, opts *blob.DeleteOptions) error {
	args := m.Called(ctx, blobName, opts)
	return args.Error(0)
}

func (m *Client) ListBlobs(ctx context.Context, opts *container.ListBlobsFlatOptions) ([]string, error) {
	args := m.Called(ctx, opts)
	if names, ok := args.Get(0).([]string); ok {
		return names, args.Error(1)
	}
	return nil, args.Error(1)
}
