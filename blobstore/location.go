package blobstore

import (
	"errors"
	"fmt"
	"strings"
)

// Supported URI schemes.
const (
	SchemeLocal = ""
	SchemeS3    = "s3"
	SchemeMinio = "minio"
)

// ErrUnsupportedScheme is returned by Locate for unknown URI schemes.
var ErrUnsupportedScheme = errors.New("blobstore: unsupported scheme")

// Location identifies a blob. Local paths have an empty Scheme and Bucket.
type Location struct {
	Scheme string
	Bucket string
	Key    string
}

// Locate parses s3://bucket/key, minio://bucket/key, file://path or a plain
// file path.
func Locate(uri string) (Location, error) {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		if uri == "" {
			return Location{}, errors.New("blobstore: empty location")
		}
		return Location{Key: uri}, nil
	}

	switch scheme {
	case "file":
		if rest == "" {
			return Location{}, fmt.Errorf("blobstore: %q has no path", uri)
		}
		return Location{Key: rest}, nil
	case SchemeS3, SchemeMinio:
		bucket, key, _ := strings.Cut(rest, "/")
		if bucket == "" || key == "" {
			return Location{}, fmt.Errorf("blobstore: %q must have the form %s://bucket/key", uri, scheme)
		}
		return Location{Scheme: scheme, Bucket: bucket, Key: key}, nil
	default:
		return Location{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}
}

// IsLocal reports whether l names a local file.
func (l Location) IsLocal() bool {
	return l.Scheme == SchemeLocal
}

func (l Location) String() string {
	if l.IsLocal() {
		return l.Key
	}
	return l.Scheme + "://" + l.Bucket + "/" + l.Key
}
