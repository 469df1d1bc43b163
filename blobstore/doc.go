// Package blobstore abstracts where input datasets are read from and where
// results are written to.
//
// A Store opens immutable blobs for reading and creates blobs for writing:
//
//	type Store interface {
//	    Open(ctx, name) (Blob, error)
//	    Create(ctx, name) (WritableBlob, error)
//	}
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, reads are memory mapped
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3 with range reads and multipart uploads
//   - minio.Store: MinIO and other S3-compatible services
//
// Locate splits a URI such as s3://bucket/points.bin into the pieces needed
// to pick a Store and a blob name.
package blobstore
