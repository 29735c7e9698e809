package testutil

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/Shr1ftyy/airnode/cloudstore/internal/storeapi"
	"github.com/Shr1ftyy/airnode/cloudstore/storetypes"
)

// FakeStore is an in-memory store implementation for round-trip tests.
// It keeps one flat object map per bucket, mirroring the flat namespace of a
// real object store.
type FakeStore struct {
	// Buckets maps bucket name -> key -> content.
	Buckets map[string]map[string][]byte
}

// NewFakeStore returns an empty in-memory store.
func NewFakeStore() *FakeStore {
	return &FakeStore{Buckets: make(map[string]map[string][]byte)}
}

// Seed creates a bucket populated with the given objects.
func (f *FakeStore) Seed(bucket string, objects map[string][]byte) {
	content := make(map[string][]byte, len(objects))
	for k, v := range objects {
		content[k] = append([]byte(nil), v...)
	}
	f.Buckets[bucket] = content
}

// ListBuckets lists bucket names in sorted order.
func (f *FakeStore) ListBuckets(ctx context.Context) ([]storetypes.BucketDescriptor, error) {
	names := make([]string, 0, len(f.Buckets))
	for name := range f.Buckets {
		names = append(names, name)
	}
	sort.Strings(names)

	buckets := make([]storetypes.BucketDescriptor, 0, len(names))
	for _, name := range names {
		buckets = append(buckets, storetypes.BucketDescriptor{Name: name})
	}
	return buckets, nil
}

// CreateBucket creates an empty bucket.
func (f *FakeStore) CreateBucket(ctx context.Context, bucket string) error {
	if _, ok := f.Buckets[bucket]; ok {
		return fmt.Errorf("bucket %q already exists", bucket)
	}
	f.Buckets[bucket] = make(map[string][]byte)
	return nil
}

// HardenBucketAccess is a no-op for the in-memory store.
func (f *FakeStore) HardenBucketAccess(ctx context.Context, bucket string) error {
	_, err := f.bucket(bucket)
	return err
}

// SetBucketPolicy is a no-op for the in-memory store.
func (f *FakeStore) SetBucketPolicy(ctx context.Context, bucket string) error {
	_, err := f.bucket(bucket)
	return err
}

// ListObjectKeys returns the bucket's keys in sorted order.
func (f *FakeStore) ListObjectKeys(ctx context.Context, bucket string) ([]string, error) {
	content, err := f.bucket(bucket)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(content))
	for key := range content {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

// PutObject stores body at key, overwriting any existing object.
func (f *FakeStore) PutObject(ctx context.Context, bucket, key, contentType string, body io.Reader) error {
	content, err := f.bucket(bucket)
	if err != nil {
		return err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	content[key] = data
	return nil
}

// GetObject returns the content at key.
func (f *FakeStore) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	content, err := f.bucket(bucket)
	if err != nil {
		return nil, err
	}
	data, ok := content[key]
	if !ok {
		return nil, fmt.Errorf("object %q not found", key)
	}
	return append([]byte(nil), data...), nil
}

// CopyObject copies fromKey to toKey, overwriting any existing object.
func (f *FakeStore) CopyObject(ctx context.Context, bucket, fromKey, toKey string) error {
	content, err := f.bucket(bucket)
	if err != nil {
		return err
	}
	data, ok := content[fromKey]
	if !ok {
		return fmt.Errorf("object %q not found", fromKey)
	}
	content[toKey] = append([]byte(nil), data...)
	return nil
}

// DeleteObject removes the object at key. Deleting an absent key no-ops,
// matching the permissive end of real provider behavior.
func (f *FakeStore) DeleteObject(ctx context.Context, bucket, key string) error {
	content, err := f.bucket(bucket)
	if err != nil {
		return err
	}
	delete(content, key)
	return nil
}

// DeleteBucket removes the bucket. It fails when the bucket is not empty.
func (f *FakeStore) DeleteBucket(ctx context.Context, bucket string) error {
	content, err := f.bucket(bucket)
	if err != nil {
		return err
	}
	if len(content) > 0 {
		return fmt.Errorf("bucket %q is not empty", bucket)
	}
	delete(f.Buckets, bucket)
	return nil
}

// Close is a no-op.
func (f *FakeStore) Close() error { return nil }

func (f *FakeStore) bucket(name string) (map[string][]byte, error) {
	content, ok := f.Buckets[name]
	if !ok {
		return nil, fmt.Errorf("bucket %q not found", name)
	}
	return content, nil
}

var _ storeapi.Store = (*FakeStore)(nil)
