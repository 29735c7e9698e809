// Package errors provides the error taxonomy for cloudstore operations.
//
// Every underlying transport failure is wrapped into exactly one of these
// types before it is returned to the caller. The message templates are fixed:
// calling automation matches on them, so the strings are part of the contract.
// The original cause is always embedded in the message and reachable through
// errors.Unwrap.
package errors

import (
	"fmt"
	"strings"

	"github.com/Shr1ftyy/airnode/cloudstore/storetypes"
)

// ListBucketsError indicates that listing the account's buckets failed.
type ListBucketsError struct {
	// Err is the underlying transport error.
	Err error
}

func (e *ListBucketsError) Error() string {
	return fmt.Sprintf("Failed to list buckets: %v", e.Err)
}

func (e *ListBucketsError) Unwrap() error { return e.Err }

// MultipleBucketsError reports a violation of the single-managed-bucket
// invariant. It is never auto-repaired: operator intervention is required,
// which distinguishes it from transient transport failures.
type MultipleBucketsError struct {
	// Buckets is the raw list of managed bucket descriptors that were found.
	Buckets []storetypes.BucketDescriptor
}

func (e *MultipleBucketsError) Error() string {
	names := make([]string, 0, len(e.Buckets))
	for _, b := range e.Buckets {
		names = append(names, "'"+b.Name+"'")
	}
	return fmt.Sprintf("Multiple managed buckets found: %s", strings.Join(names, ", "))
}

// CreateBucketError indicates that the bucket-create call failed.
type CreateBucketError struct {
	Bucket string
	Err    error
}

func (e *CreateBucketError) Error() string {
	return fmt.Sprintf("Failed to create bucket '%s': %v", e.Bucket, e.Err)
}

func (e *CreateBucketError) Unwrap() error { return e.Err }

// AccessControlError indicates that the access-hardening step of bucket
// creation failed. The bucket itself already exists at this point.
type AccessControlError struct {
	Bucket string
	Err    error
}

func (e *AccessControlError) Error() string {
	return fmt.Sprintf("Failed to set access control of bucket '%s': %v", e.Bucket, e.Err)
}

func (e *AccessControlError) Unwrap() error { return e.Err }

// PolicyError indicates that setting the bucket policy failed. The bucket
// exists and has hardened access control at this point.
type PolicyError struct {
	Bucket string
	Err    error
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("Failed to set IAM policy of bucket '%s': %v", e.Bucket, e.Err)
}

func (e *PolicyError) Unwrap() error { return e.Err }

// ListBucketContentError indicates that listing the objects of a bucket failed.
type ListBucketContentError struct {
	Bucket string
	Err    error
}

func (e *ListBucketContentError) Error() string {
	return fmt.Sprintf("Failed to list content of bucket '%s': %v", e.Bucket, e.Err)
}

func (e *ListBucketContentError) Unwrap() error { return e.Err }

// StoreFileError indicates that uploading a local file failed.
type StoreFileError struct {
	// Path is the local source path.
	Path   string
	Bucket string
	Err    error
}

func (e *StoreFileError) Error() string {
	return fmt.Sprintf("Failed to store file '%s' [bucket %s]: %v", e.Path, e.Bucket, e.Err)
}

func (e *StoreFileError) Unwrap() error { return e.Err }

// FetchFileError indicates that downloading an object failed. A missing
// object surfaces through this type as well; not-found is not special-cased.
type FetchFileError struct {
	Key    string
	Bucket string
	Err    error
}

func (e *FetchFileError) Error() string {
	return fmt.Sprintf("Failed to fetch file '%s' [bucket %s]: %v", e.Key, e.Bucket, e.Err)
}

func (e *FetchFileError) Unwrap() error { return e.Err }

// CopyFileError indicates that a server-side copy within a bucket failed.
type CopyFileError struct {
	From   string
	To     string
	Bucket string
	Err    error
}

func (e *CopyFileError) Error() string {
	return fmt.Sprintf("Failed to copy file '%s' to '%s' [bucket %s]: %v", e.From, e.To, e.Bucket, e.Err)
}

func (e *CopyFileError) Unwrap() error { return e.Err }

// DeleteObjectError indicates that deleting a single object failed. The
// directory deletion walk stops at the first occurrence of this error.
type DeleteObjectError struct {
	Key    string
	Bucket string
	Err    error
}

func (e *DeleteObjectError) Error() string {
	return fmt.Sprintf("Failed to delete object '%s' [bucket %s]: %v", e.Key, e.Bucket, e.Err)
}

func (e *DeleteObjectError) Unwrap() error { return e.Err }

// DeleteBucketError indicates that deleting the bucket itself failed.
type DeleteBucketError struct {
	Bucket string
	Err    error
}

func (e *DeleteBucketError) Error() string {
	return fmt.Sprintf("Failed to delete bucket '%s': %v", e.Bucket, e.Err)
}

func (e *DeleteBucketError) Unwrap() error { return e.Err }
