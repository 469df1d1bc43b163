// Package s3 provides an Amazon S3 implementation of blobstore.Store.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket", func(o *s3.Options) {
//	    o.Region = "eu-central-1"
//	})
//
//	data, err := blobstore.ReadAll(ctx, store, "points.bin")
//
// Blobs are read with ranged GETs and written through the multipart upload
// manager, so outputs of any size can be streamed.
package s3
