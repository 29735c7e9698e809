package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Shr1ftyy/airnode/cloudstore/storetypes"
)

// The message templates are part of the contract: calling automation matches
// on them, so each one is pinned here verbatim.
func TestErrorMessages(t *testing.T) {
	cause := errors.New("transport broke")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "list buckets",
			err:  &ListBucketsError{Err: cause},
			want: "Failed to list buckets: transport broke",
		},
		{
			name: "multiple buckets",
			err: &MultipleBucketsError{Buckets: []storetypes.BucketDescriptor{
				{Name: "airnode-aabbccdd0011"},
				{Name: "airnode-eeff99887766"},
			}},
			want: "Multiple managed buckets found: 'airnode-aabbccdd0011', 'airnode-eeff99887766'",
		},
		{
			name: "create bucket",
			err:  &CreateBucketError{Bucket: "airnode-aabbccdd0011", Err: cause},
			want: "Failed to create bucket 'airnode-aabbccdd0011': transport broke",
		},
		{
			name: "access control",
			err:  &AccessControlError{Bucket: "airnode-aabbccdd0011", Err: cause},
			want: "Failed to set access control of bucket 'airnode-aabbccdd0011': transport broke",
		},
		{
			name: "policy",
			err:  &PolicyError{Bucket: "airnode-aabbccdd0011", Err: cause},
			want: "Failed to set IAM policy of bucket 'airnode-aabbccdd0011': transport broke",
		},
		{
			name: "list bucket content",
			err:  &ListBucketContentError{Bucket: "airnode-aabbccdd0011", Err: cause},
			want: "Failed to list content of bucket 'airnode-aabbccdd0011': transport broke",
		},
		{
			name: "store file",
			err:  &StoreFileError{Path: "/tmp/config.json", Bucket: "airnode-aabbccdd0011", Err: cause},
			want: "Failed to store file '/tmp/config.json' [bucket airnode-aabbccdd0011]: transport broke",
		},
		{
			name: "fetch file",
			err:  &FetchFileError{Key: "a/b/config.json", Bucket: "airnode-aabbccdd0011", Err: cause},
			want: "Failed to fetch file 'a/b/config.json' [bucket airnode-aabbccdd0011]: transport broke",
		},
		{
			name: "copy file",
			err:  &CopyFileError{From: "a/b.json", To: "a/c.json", Bucket: "airnode-aabbccdd0011", Err: cause},
			want: "Failed to copy file 'a/b.json' to 'a/c.json' [bucket airnode-aabbccdd0011]: transport broke",
		},
		{
			name: "delete object",
			err:  &DeleteObjectError{Key: "a/b.json", Bucket: "airnode-aabbccdd0011", Err: cause},
			want: "Failed to delete object 'a/b.json' [bucket airnode-aabbccdd0011]: transport broke",
		},
		{
			name: "delete bucket",
			err:  &DeleteBucketError{Bucket: "airnode-aabbccdd0011", Err: cause},
			want: "Failed to delete bucket 'airnode-aabbccdd0011': transport broke",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorsEmbedCause(t *testing.T) {
	cause := errors.New("root cause")

	wrapped := []error{
		&ListBucketsError{Err: cause},
		&CreateBucketError{Bucket: "b", Err: cause},
		&AccessControlError{Bucket: "b", Err: cause},
		&PolicyError{Bucket: "b", Err: cause},
		&ListBucketContentError{Bucket: "b", Err: cause},
		&StoreFileError{Path: "p", Bucket: "b", Err: cause},
		&FetchFileError{Key: "k", Bucket: "b", Err: cause},
		&CopyFileError{From: "f", To: "t", Bucket: "b", Err: cause},
		&DeleteObjectError{Key: "k", Bucket: "b", Err: cause},
		&DeleteBucketError{Bucket: "b", Err: cause},
	}

	for _, err := range wrapped {
		assert.ErrorIs(t, err, cause, "%T must unwrap to the original cause", err)
		assert.Contains(t, err.Error(), cause.Error(), "%T must embed the cause in the message", err)
	}
}
