// Package storage provides the object-storage layer for the report archive.
//
// It wraps the MinIO Go client behind a narrow interface covering the
// operations the archive needs: checking bucket existence, creating the
// bucket and uploading report snapshots. This abstraction supports both
// AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "registry-reports")
package storage
