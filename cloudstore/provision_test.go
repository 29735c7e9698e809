package cloudstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	storeerrors "github.com/Shr1ftyy/airnode/cloudstore/errors"
	"github.com/Shr1ftyy/airnode/cloudstore/internal/testutil"
	"github.com/Shr1ftyy/airnode/cloudstore/storetypes"
)

func gcpConfig() storetypes.ProviderConfig {
	return storetypes.ProviderConfig{
		Type:      storetypes.ProviderGCP,
		Region:    "us-east1",
		ProjectID: "p1",
	}
}

func TestClient_Discover(t *testing.T) {
	tests := []struct {
		name        string
		buckets     []string
		listErr     error
		want        string
		wantErr     error
		errContains string
	}{
		{
			name:    "no buckets at all",
			buckets: nil,
			want:    "",
		},
		{
			name:    "no managed buckets",
			buckets: []string{"some-other-bucket", "cdn-assets"},
			want:    "",
		},
		{
			name:    "exactly one managed bucket",
			buckets: []string{"airnode-aabbccdd0011"},
			want:    "airnode-aabbccdd0011",
		},
		{
			name:    "one managed bucket among unrelated ones",
			buckets: []string{"cdn-assets", "airnode-aabbccdd0011", "airnode-not-managed"},
			want:    "airnode-aabbccdd0011",
		},
		{
			name:        "two managed buckets",
			buckets:     []string{"airnode-aabbccdd0011", "airnode-eeff99887766"},
			wantErr:     &storeerrors.MultipleBucketsError{},
			errContains: "Multiple managed buckets found: 'airnode-aabbccdd0011', 'airnode-eeff99887766'",
		},
		{
			name:        "listing fails",
			listErr:     errors.New("connection refused"),
			wantErr:     &storeerrors.ListBucketsError{},
			errContains: "Failed to list buckets: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &testutil.MockStore{
				ListBucketsFunc: func(ctx context.Context) ([]storetypes.BucketDescriptor, error) {
					if tt.listErr != nil {
						return nil, tt.listErr
					}
					descriptors := make([]storetypes.BucketDescriptor, 0, len(tt.buckets))
					for _, name := range tt.buckets {
						descriptors = append(descriptors, storetypes.BucketDescriptor{Name: name})
					}
					return descriptors, nil
				},
			}
			client := NewWithStore(gcpConfig(), store)

			got, err := client.Discover(context.Background())

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				switch tt.wantErr.(type) {
				case *storeerrors.MultipleBucketsError:
					var multiErr *storeerrors.MultipleBucketsError
					require.ErrorAs(t, err, &multiErr)
					assert.Len(t, multiErr.Buckets, 2)
				case *storeerrors.ListBucketsError:
					var listErr *storeerrors.ListBucketsError
					require.ErrorAs(t, err, &listErr)
					assert.ErrorIs(t, err, tt.listErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_Create_CallSequence(t *testing.T) {
	store := &testutil.MockStore{}
	client := NewWithStore(gcpConfig(), store)

	bucket, err := client.Create(context.Background())

	require.NoError(t, err)
	assert.True(t, IsManagedBucketName(bucket), "created bucket must carry the managed name format: %s", bucket)
	assert.Equal(t, []string{"CreateBucket", "HardenBucketAccess", "SetBucketPolicy"}, store.Calls)
}

func TestClient_Create_ShortCircuits(t *testing.T) {
	cause := errors.New("permission denied")

	tests := []struct {
		name        string
		setupMock   func(*testutil.MockStore)
		wantCalls   []string
		errContains string
		wantErrAs   func(error) bool
	}{
		{
			name: "create fails",
			setupMock: func(m *testutil.MockStore) {
				m.CreateBucketFunc = func(ctx context.Context, bucket string) error { return cause }
			},
			wantCalls:   []string{"CreateBucket"},
			errContains: "Failed to create bucket 'airnode-",
			wantErrAs: func(err error) bool {
				var e *storeerrors.CreateBucketError
				return errors.As(err, &e)
			},
		},
		{
			name: "hardening fails",
			setupMock: func(m *testutil.MockStore) {
				m.HardenBucketAccessFunc = func(ctx context.Context, bucket string) error { return cause }
			},
			wantCalls:   []string{"CreateBucket", "HardenBucketAccess"},
			errContains: "Failed to set access control of bucket 'airnode-",
			wantErrAs: func(err error) bool {
				var e *storeerrors.AccessControlError
				return errors.As(err, &e)
			},
		},
		{
			name: "policy fails",
			setupMock: func(m *testutil.MockStore) {
				m.SetBucketPolicyFunc = func(ctx context.Context, bucket string) error { return cause }
			},
			wantCalls:   []string{"CreateBucket", "HardenBucketAccess", "SetBucketPolicy"},
			errContains: "Failed to set IAM policy of bucket 'airnode-",
			wantErrAs: func(err error) bool {
				var e *storeerrors.PolicyError
				return errors.As(err, &e)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &testutil.MockStore{}
			tt.setupMock(store)
			client := NewWithStore(gcpConfig(), store)

			bucket, err := client.Create(context.Background())

			require.Error(t, err)
			assert.Empty(t, bucket)
			assert.Contains(t, err.Error(), tt.errContains)
			assert.True(t, tt.wantErrAs(err), "error has the wrong type: %v", err)
			assert.ErrorIs(t, err, cause)
			assert.Equal(t, tt.wantCalls, store.Calls, "failing step must abort the remaining ones")
		})
	}
}
