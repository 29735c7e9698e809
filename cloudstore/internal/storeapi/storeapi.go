// Package storeapi defines the provider-neutral interface driven by the
// cloudstore layer. Each provider backend implements Store on top of its SDK;
// mocks implement it for testing. Raw provider errors pass through unwrapped;
// translation into the domain taxonomy happens in the public layer only.
package storeapi

import (
	"context"
	"io"

	"github.com/Shr1ftyy/airnode/cloudstore/storetypes"
)

// Store is the set of point-to-point provider calls this layer depends on.
// Every call is a single request/response unit: it either succeeds or returns
// a transport error. Retries below this interface are the SDK's business.
type Store interface {
	// ListBuckets lists every bucket visible to the configured credentials.
	ListBuckets(ctx context.Context) ([]storetypes.BucketDescriptor, error)

	// CreateBucket creates a bucket in the configured region and project.
	CreateBucket(ctx context.Context, bucket string) error

	// HardenBucketAccess enables uniform, enforced public-access-prevention
	// access control on the bucket, disabling per-object ACLs.
	HardenBucketAccess(ctx context.Context, bucket string) error

	// SetBucketPolicy grants the project's viewer identity read-only access
	// and the project's editor/owner identities read-write access.
	SetBucketPolicy(ctx context.Context, bucket string) error

	// ListObjectKeys returns every object key in the bucket.
	ListObjectKeys(ctx context.Context, bucket string) ([]string, error)

	// PutObject uploads body to key, overwriting any existing object.
	PutObject(ctx context.Context, bucket, key, contentType string, body io.Reader) error

	// GetObject returns the full content of the object at key.
	GetObject(ctx context.Context, bucket, key string) ([]byte, error)

	// CopyObject performs a server-side copy within the bucket, overwriting
	// any existing object at toKey.
	CopyObject(ctx context.Context, bucket, fromKey, toKey string) error

	// DeleteObject deletes a single object. Whether deleting an absent key
	// errors or no-ops is the provider's behavior and is not special-cased.
	DeleteObject(ctx context.Context, bucket, key string) error

	// DeleteBucket deletes the bucket itself. It never empties the bucket.
	DeleteBucket(ctx context.Context, bucket string) error

	// Close releases resources held by the backend.
	Close() error
}
