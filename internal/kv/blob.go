package kv

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
)

// BlobStore keeps one blob per key in an Azure storage container.
type BlobStore struct {
	client    *azblob.Client
	container string
}

var _ Store = (*BlobStore)(nil)

func NewBlobStore(accountName, accountKey, container string) (*BlobStore, error) {
	cred, err := azblob.NewSharedKeyCredential(accountName, accountKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create shared key credential: %w", err)
	}

	// The service URL for blob endpoints is usually in the form: http(s)://<account>.blob.core.windows.net/
	client, err := azblob.NewClientWithSharedKeyCredential(fmt.Sprintf("https://%s.blob.core.windows.net/", accountName), cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client: %w", err)
	}

	return &BlobStore{
		client:    client,
		container: container,
	}, nil
}

func (b *BlobStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	stream, err := b.client.DownloadStream(ctx, b.container, key, &azblob.DownloadStreamOptions{})
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return nil, ErrNotFound
		}
		slog.ErrorContext(ctx, "failed to download blob", "key", key, "error", err)
		return nil, err
	}
	return stream.Body, nil
}

func (b *BlobStore) Set(ctx context.Context, key, value string) error {
	_, err := b.client.UploadStream(ctx, b.container, key, strings.NewReader(value), &azblob.UploadStreamOptions{})
	return err
}

func (b *BlobStore) Remove(ctx context.Context, key string) error {
	_, err := b.client.DeleteBlob(ctx, b.container, key, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.BlobNotFound) {
		return err
	}
	return nil
}
