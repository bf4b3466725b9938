// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the operations the
// matcher needs: reading catalogs from a bucket and keeping the ledger slot as an object.
// This abstraction supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists, MakeBucket: used by EnsureBucket at startup.
//   - GetObject: reads catalogs and the ledger slot.
//   - PutObject, RemoveObject: write and clear the ledger slot.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "matcher")
package storage
