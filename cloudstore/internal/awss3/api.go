// Package awss3 implements the provider store on Amazon S3.
package awss3

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the subset of S3 operations this backend uses.
// The interface allows mocking the SDK client in tests.
type S3API interface {
	// ListBuckets lists the buckets owned by the account
	ListBuckets(
		ctx context.Context,
		params *s3.ListBucketsInput,
		optFns ...func(*s3.Options),
	) (*s3.ListBucketsOutput, error)

	// CreateBucket creates a new S3 bucket
	CreateBucket(
		ctx context.Context,
		params *s3.CreateBucketInput,
		optFns ...func(*s3.Options),
	) (*s3.CreateBucketOutput, error)

	// PutPublicAccessBlock applies the public access block configuration
	PutPublicAccessBlock(
		ctx context.Context,
		params *s3.PutPublicAccessBlockInput,
		optFns ...func(*s3.Options),
	) (*s3.PutPublicAccessBlockOutput, error)

	// PutBucketPolicy sets the bucket policy
	PutBucketPolicy(
		ctx context.Context,
		params *s3.PutBucketPolicyInput,
		optFns ...func(*s3.Options),
	) (*s3.PutBucketPolicyOutput, error)

	// ListObjectsV2 lists objects in a bucket
	ListObjectsV2(
		ctx context.Context,
		params *s3.ListObjectsV2Input,
		optFns ...func(*s3.Options),
	) (*s3.ListObjectsV2Output, error)

	// PutObject uploads an object
	PutObject(
		ctx context.Context,
		params *s3.PutObjectInput,
		optFns ...func(*s3.Options),
	) (*s3.PutObjectOutput, error)

	// GetObject retrieves an object
	GetObject(
		ctx context.Context,
		params *s3.GetObjectInput,
		optFns ...func(*s3.Options),
	) (*s3.GetObjectOutput, error)

	// CopyObject copies an object within S3
	CopyObject(
		ctx context.Context,
		params *s3.CopyObjectInput,
		optFns ...func(*s3.Options),
	) (*s3.CopyObjectOutput, error)

	// DeleteObject deletes an object
	DeleteObject(
		ctx context.Context,
		params *s3.DeleteObjectInput,
		optFns ...func(*s3.Options),
	) (*s3.DeleteObjectOutput, error)

	// DeleteBucket deletes a bucket
	DeleteBucket(
		ctx context.Context,
		params *s3.DeleteBucketInput,
		optFns ...func(*s3.Options),
	) (*s3.DeleteBucketOutput, error)
}

// Verify that the AWS S3 client implements our interface
var _ S3API = (*s3.Client)(nil)
