// Package testutil provides test utilities and mocks for cloudstore.
// This package is internal and should only be used for testing within the
// cloudstore module.
package testutil

import (
	"context"
	"io"

	"github.com/Shr1ftyy/airnode/cloudstore/internal/storeapi"
	"github.com/Shr1ftyy/airnode/cloudstore/storetypes"
)

// MockStore is a mock implementation of the storeapi.Store interface.
// It allows customization of each operation through function fields and
// records the sequence of provider calls it receives.
type MockStore struct {
	ListBucketsFunc        func(context.Context) ([]storetypes.BucketDescriptor, error)
	CreateBucketFunc       func(context.Context, string) error
	HardenBucketAccessFunc func(context.Context, string) error
	SetBucketPolicyFunc    func(context.Context, string) error
	ListObjectKeysFunc     func(context.Context, string) ([]string, error)
	PutObjectFunc          func(ctx context.Context, bucket, key, contentType string, body io.Reader) error
	GetObjectFunc          func(ctx context.Context, bucket, key string) ([]byte, error)
	CopyObjectFunc         func(ctx context.Context, bucket, fromKey, toKey string) error
	DeleteObjectFunc       func(ctx context.Context, bucket, key string) error
	DeleteBucketFunc       func(context.Context, string) error
	CloseFunc              func() error

	// Calls records the operation names in invocation order.
	Calls []string

	// DeletedKeys records the keys passed to DeleteObject in order.
	DeletedKeys []string
}

// ListBuckets mocks the bucket listing operation.
func (m *MockStore) ListBuckets(ctx context.Context) ([]storetypes.BucketDescriptor, error) {
	m.Calls = append(m.Calls, "ListBuckets")
	if m.ListBucketsFunc != nil {
		return m.ListBucketsFunc(ctx)
	}
	return nil, nil
}

// CreateBucket mocks the bucket creation operation.
func (m *MockStore) CreateBucket(ctx context.Context, bucket string) error {
	m.Calls = append(m.Calls, "CreateBucket")
	if m.CreateBucketFunc != nil {
		return m.CreateBucketFunc(ctx, bucket)
	}
	return nil
}

// HardenBucketAccess mocks the access-hardening operation.
func (m *MockStore) HardenBucketAccess(ctx context.Context, bucket string) error {
	m.Calls = append(m.Calls, "HardenBucketAccess")
	if m.HardenBucketAccessFunc != nil {
		return m.HardenBucketAccessFunc(ctx, bucket)
	}
	return nil
}

// SetBucketPolicy mocks the policy operation.
func (m *MockStore) SetBucketPolicy(ctx context.Context, bucket string) error {
	m.Calls = append(m.Calls, "SetBucketPolicy")
	if m.SetBucketPolicyFunc != nil {
		return m.SetBucketPolicyFunc(ctx, bucket)
	}
	return nil
}

// ListObjectKeys mocks the object listing operation.
func (m *MockStore) ListObjectKeys(ctx context.Context, bucket string) ([]string, error) {
	m.Calls = append(m.Calls, "ListObjectKeys")
	if m.ListObjectKeysFunc != nil {
		return m.ListObjectKeysFunc(ctx, bucket)
	}
	return nil, nil
}

// PutObject mocks the upload operation.
func (m *MockStore) PutObject(ctx context.Context, bucket, key, contentType string, body io.Reader) error {
	m.Calls = append(m.Calls, "PutObject")
	if m.PutObjectFunc != nil {
		return m.PutObjectFunc(ctx, bucket, key, contentType, body)
	}
	return nil
}

// GetObject mocks the download operation.
func (m *MockStore) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	m.Calls = append(m.Calls, "GetObject")
	if m.GetObjectFunc != nil {
		return m.GetObjectFunc(ctx, bucket, key)
	}
	return nil, nil
}

// CopyObject mocks the server-side copy operation.
func (m *MockStore) CopyObject(ctx context.Context, bucket, fromKey, toKey string) error {
	m.Calls = append(m.Calls, "CopyObject")
	if m.CopyObjectFunc != nil {
		return m.CopyObjectFunc(ctx, bucket, fromKey, toKey)
	}
	return nil
}

// DeleteObject mocks the object deletion operation.
func (m *MockStore) DeleteObject(ctx context.Context, bucket, key string) error {
	m.Calls = append(m.Calls, "DeleteObject")
	m.DeletedKeys = append(m.DeletedKeys, key)
	if m.DeleteObjectFunc != nil {
		return m.DeleteObjectFunc(ctx, bucket, key)
	}
	return nil
}

// DeleteBucket mocks the bucket deletion operation.
func (m *MockStore) DeleteBucket(ctx context.Context, bucket string) error {
	m.Calls = append(m.Calls, "DeleteBucket")
	if m.DeleteBucketFunc != nil {
		return m.DeleteBucketFunc(ctx, bucket)
	}
	return nil
}

// Close mocks the close operation.
func (m *MockStore) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

var _ storeapi.Store = (*MockStore)(nil)
