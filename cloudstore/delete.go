// Package cloudstore provides the directory deletion engine.
package cloudstore

import (
	"context"

	storeerrors "github.com/Shr1ftyy/airnode/cloudstore/errors"
	"github.com/Shr1ftyy/airnode/cloudstore/internal/validation"
	"github.com/Shr1ftyy/airnode/cloudstore/storetypes"
)

// DeleteDirectory recursively deletes every terminal object reachable from
// node, deepest levels first: a node's subdirectories are fully deleted
// before the node's own terminal entries. Sibling subtrees are walked in
// sorted name order; every reachable terminal is visited exactly once.
//
// The walk is intentionally fail-fast: the first failing object delete stops
// it immediately, no further deletes are attempted, and the failure surfaces
// as a *errors.DeleteObjectError naming the specific key. Objects deleted
// before the failure stay deleted; there is no compensating re-creation.
// Partial deletion is resolved by re-invoking DeleteDirectory on a fresh
// tree; whether deleting an already-absent key errors or no-ops is the
// underlying store's behavior and is not special-cased here.
//
// Errors:
//   - *errors.DeleteObjectError: an object delete failed; the walk stopped
func (c *Client) DeleteDirectory(ctx context.Context, bucket string, node *storetypes.Directory) error {
	if node == nil {
		return nil
	}

	for _, name := range node.DirNames() {
		if err := c.DeleteDirectory(ctx, bucket, node.Dirs[name]); err != nil {
			return err
		}
	}
	for _, name := range node.FileNames() {
		key := node.Files[name]
		if err := c.store.DeleteObject(ctx, bucket, key); err != nil {
			return &storeerrors.DeleteObjectError{Key: key, Bucket: bucket, Err: err}
		}
	}
	return nil
}

// DeleteBucket deletes the bucket itself. The bucket is assumed to be empty:
// this call never attempts to empty it first. Emptying is the caller's
// responsibility via DeleteDirectory on the bucket's full tree.
//
// Errors:
//   - *errors.DeleteBucketError: validation or the bucket delete failed
func (c *Client) DeleteBucket(ctx context.Context, bucket string) error {
	if err := validation.ValidateBucketName(bucket); err != nil {
		return &storeerrors.DeleteBucketError{Bucket: bucket, Err: err}
	}

	if err := c.store.DeleteBucket(ctx, bucket); err != nil {
		return &storeerrors.DeleteBucketError{Bucket: bucket, Err: err}
	}
	return nil
}
