// Package cloudstore provides bucket discovery and provisioning.
package cloudstore

import (
	"context"

	storeerrors "github.com/Shr1ftyy/airnode/cloudstore/errors"
	"github.com/Shr1ftyy/airnode/cloudstore/storetypes"
)

// Discover finds the managed bucket of the configured project.
//
// It lists all buckets visible under the configured credentials and filters
// them by IsManagedBucketName. Zero matches return the empty string with a nil
// error. Exactly one match returns that bucket's name. Two or more matches
// violate the single-managed-bucket invariant and return a
// *errors.MultipleBucketsError carrying the matching descriptors; the
// violation is reported, never auto-repaired.
//
// Errors:
//   - *errors.ListBucketsError: the bucket listing itself failed
//   - *errors.MultipleBucketsError: more than one managed bucket exists
func (c *Client) Discover(ctx context.Context) (string, error) {
	buckets, err := c.store.ListBuckets(ctx)
	if err != nil {
		return "", &storeerrors.ListBucketsError{Err: err}
	}

	var managed []storetypes.BucketDescriptor
	for _, b := range buckets {
		if IsManagedBucketName(b.Name) {
			managed = append(managed, b)
		}
	}

	switch len(managed) {
	case 0:
		return "", nil
	case 1:
		return managed[0].Name, nil
	default:
		return "", &storeerrors.MultipleBucketsError{Buckets: managed}
	}
}

// Create provisions the managed bucket for the configured project.
//
// It generates a fresh bucket name and then issues exactly three provider
// calls in order: create the bucket, harden its access control (uniform
// bucket-level access with enforced public-access prevention), and set the
// bucket policy granting the project's viewer identity read-only access and
// the editor/owner identities read-write access. The sequence is strictly
// sequential and non-resumable: the first failing step aborts the remaining
// ones and no rollback of the partially created bucket is attempted. Partial
// state is left for the caller to observe via Discover.
//
// Nothing prevents two concurrent callers from both passing Discover's
// "no bucket yet" check and each creating a bucket; that race is caught only
// retroactively by a later Discover returning MultipleBucketsError. Callers
// needing a strict guarantee must serialize provisioning externally.
//
// Errors:
//   - *errors.CreateBucketError: the bucket-create call failed
//   - *errors.AccessControlError: the hardening call failed
//   - *errors.PolicyError: the policy call failed
func (c *Client) Create(ctx context.Context) (string, error) {
	bucket := GenerateBucketName()

	if err := c.store.CreateBucket(ctx, bucket); err != nil {
		return "", &storeerrors.CreateBucketError{Bucket: bucket, Err: err}
	}
	if err := c.store.HardenBucketAccess(ctx, bucket); err != nil {
		return "", &storeerrors.AccessControlError{Bucket: bucket, Err: err}
	}
	if err := c.store.SetBucketPolicy(ctx, bucket); err != nil {
		return "", &storeerrors.PolicyError{Bucket: bucket, Err: err}
	}

	return bucket, nil
}
