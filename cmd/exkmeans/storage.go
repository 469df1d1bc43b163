package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/exkmeans/blobstore"
	miniostore "github.com/hupe1980/exkmeans/blobstore/minio"
	s3store "github.com/hupe1980/exkmeans/blobstore/s3"
)

// openStore returns the store holding loc and the blob name within it.
func openStore(ctx context.Context, loc blobstore.Location, so StorageOptions) (blobstore.Store, string, error) {
	switch loc.Scheme {
	case blobstore.SchemeLocal:
		return blobstore.NewLocalStore("."), loc.Key, nil
	case blobstore.SchemeS3:
		store, err := s3store.New(ctx, loc.Bucket, func(o *s3store.Options) {
			o.Region = so.S3Region
		})
		if err != nil {
			return nil, "", err
		}
		return store, loc.Key, nil
	case blobstore.SchemeMinio:
		if so.MinioEndpoint == "" {
			return nil, "", errors.New("minio:// locations need --minio-endpoint")
		}
		store, err := miniostore.New(so.MinioEndpoint, loc.Bucket, func(o *miniostore.Options) {
			o.AccessKey = so.MinioAccessKey
			o.SecretKey = so.MinioSecretKey
			o.Secure = so.MinioSecure
		})
		if err != nil {
			return nil, "", err
		}
		return store, loc.Key, nil
	default:
		return nil, "", fmt.Errorf("%w: %q", blobstore.ErrUnsupportedScheme, loc.Scheme)
	}
}
