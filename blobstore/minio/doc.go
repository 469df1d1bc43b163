// Package minio provides a blobstore.Store backed by MinIO or any other
// S3-compatible service (Ceph, Garage, SeaweedFS).
//
// # Basic Usage
//
//	store, err := minio.New("localhost:9000", "datasets", func(o *minio.Options) {
//	    o.AccessKey = "minioadmin"
//	    o.SecretKey = "minioadmin"
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	data, err := blobstore.ReadAll(ctx, store, "points.bin")
//
// An existing *minio.Client can be wrapped with NewStore.
package minio
