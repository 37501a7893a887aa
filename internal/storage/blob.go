package storage

import (
	"context"
	"errors"
)

// ErrBlobNotFound is returned by Get/Delete for unknown keys.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStore is a content store keyed by opaque object names. The analysis
// pipeline only ever round-trips whole documents, so the interface stays
// byte-oriented.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
