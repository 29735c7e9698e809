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

// buildTestTree constructs a tree from keys without going through a store.
func buildTestTree(t *testing.T, keys []string) *storetypes.Directory {
	t.Helper()
	store := &testutil.MockStore{
		ListObjectKeysFunc: func(ctx context.Context, bucket string) ([]string, error) {
			return keys, nil
		},
	}
	root, err := NewWithStore(gcpConfig(), store).BuildTree(context.Background(), testBucket)
	require.NoError(t, err)
	return root
}

func TestClient_DeleteDirectory_DeletesEveryTerminal(t *testing.T) {
	keys := []string{
		"a/b/c.json",
		"a/b/d.json",
		"a/e.json",
		"f.txt",
		"g/h/", // marker, no terminal
	}
	root := buildTestTree(t, keys)

	store := &testutil.MockStore{}
	client := NewWithStore(gcpConfig(), store)

	err := client.DeleteDirectory(context.Background(), testBucket, root)

	require.NoError(t, err)
	assert.Len(t, store.DeletedKeys, 4, "one delete call per terminal entry")
	assert.ElementsMatch(t, []string{"a/b/c.json", "a/b/d.json", "a/e.json", "f.txt"}, store.DeletedKeys)
}

func TestClient_DeleteDirectory_DeepestFirst(t *testing.T) {
	root := buildTestTree(t, []string{
		"top.txt",
		"sub/mid.txt",
		"sub/deeper/leaf.txt",
	})

	store := &testutil.MockStore{}
	client := NewWithStore(gcpConfig(), store)

	require.NoError(t, client.DeleteDirectory(context.Background(), testBucket, root))

	// Subdirectory contents go before the parent's own terminals.
	assert.Equal(t, []string{"sub/deeper/leaf.txt", "sub/mid.txt", "top.txt"}, store.DeletedKeys)
}

func TestClient_DeleteDirectory_StopsAtFirstFailure(t *testing.T) {
	root := buildTestTree(t, []string{
		"a/1.txt",
		"a/2.txt",
		"a/3.txt",
		"b/4.txt",
	})
	cause := errors.New("rate limited")

	store := &testutil.MockStore{}
	store.DeleteObjectFunc = func(ctx context.Context, bucket, key string) error {
		if key == "a/2.txt" {
			return cause
		}
		return nil
	}
	client := NewWithStore(gcpConfig(), store)

	err := client.DeleteDirectory(context.Background(), testBucket, root)

	require.Error(t, err)
	var delErr *storeerrors.DeleteObjectError
	require.ErrorAs(t, err, &delErr)
	assert.Equal(t, "a/2.txt", delErr.Key)
	assert.Equal(t, "Failed to delete object 'a/2.txt' [bucket "+testBucket+"]: rate limited", err.Error())
	assert.ErrorIs(t, err, cause)

	// The walk stops immediately: the failing key is the last one attempted.
	assert.Equal(t, []string{"a/1.txt", "a/2.txt"}, store.DeletedKeys)
}

func TestClient_DeleteDirectory_NilAndEmptyNodes(t *testing.T) {
	store := &testutil.MockStore{}
	client := NewWithStore(gcpConfig(), store)

	require.NoError(t, client.DeleteDirectory(context.Background(), testBucket, nil))
	require.NoError(t, client.DeleteDirectory(context.Background(), testBucket, storetypes.NewDirectory()))
	assert.Empty(t, store.DeletedKeys)
}

// Deleting after a failure resumes from a fresh tree: already-absent keys are
// simply deleted again per the provider's own semantics.
func TestClient_DeleteDirectory_ReinvocationCompletes(t *testing.T) {
	ctx := context.Background()
	fake := testutil.NewFakeStore()
	fake.Seed(testBucket, map[string][]byte{
		"a/1.txt": []byte("1"),
		"a/2.txt": []byte("2"),
		"b/3.txt": []byte("3"),
	})
	client := NewWithStore(gcpConfig(), fake)

	root, err := client.BuildTree(ctx, testBucket)
	require.NoError(t, err)
	require.NoError(t, client.DeleteDirectory(ctx, testBucket, root))

	root, err = client.BuildTree(ctx, testBucket)
	require.NoError(t, err)
	assert.True(t, root.Empty())

	require.NoError(t, client.DeleteBucket(ctx, testBucket))
}

func TestClient_DeleteBucket(t *testing.T) {
	tests := []struct {
		name        string
		bucket      string
		deleteErr   error
		wantErr     bool
		errContains string
	}{
		{
			name:   "deletes the bucket",
			bucket: testBucket,
		},
		{
			name:        "invalid bucket name",
			bucket:      "",
			wantErr:     true,
			errContains: "bucket name cannot be empty",
		},
		{
			name:        "delete failure is wrapped",
			bucket:      testBucket,
			deleteErr:   errors.New("bucket not empty"),
			wantErr:     true,
			errContains: "Failed to delete bucket '" + testBucket + "': bucket not empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &testutil.MockStore{
				DeleteBucketFunc: func(ctx context.Context, bucket string) error {
					return tt.deleteErr
				},
			}
			client := NewWithStore(gcpConfig(), store)

			err := client.DeleteBucket(context.Background(), tt.bucket)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				var delErr *storeerrors.DeleteBucketError
				assert.ErrorAs(t, err, &delErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{"DeleteBucket"}, store.Calls, "DeleteBucket never lists or empties the bucket")
		})
	}
}
