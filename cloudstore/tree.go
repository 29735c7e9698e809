// Package cloudstore provides the directory tree builder.
package cloudstore

import (
	"context"
	"strings"

	storeerrors "github.com/Shr1ftyy/airnode/cloudstore/errors"
	"github.com/Shr1ftyy/airnode/cloudstore/storetypes"
)

// BuildTree lists every object key in the bucket and reconstructs the
// directory-like view over the flat namespace.
//
// Each key is inserted by splitting on "/": every path segment except the
// last becomes (or reuses) a directory level and the final segment is stored
// as a terminal entry pointing at the full original key. A key ending in "/"
// is an explicit empty-directory marker: it creates the directory chain
// without a terminal entry. The resulting tree is a deterministic function of
// the key set; listing order does not matter.
//
// The tree is built from one listing snapshot and is owned by the caller for
// the duration of one operation. It is not kept consistent with concurrent
// mutations of the store.
//
// Errors:
//   - *errors.ListBucketContentError: the object listing failed
func (c *Client) BuildTree(ctx context.Context, bucket string) (*storetypes.Directory, error) {
	keys, err := c.store.ListObjectKeys(ctx, bucket)
	if err != nil {
		return nil, &storeerrors.ListBucketContentError{Bucket: bucket, Err: err}
	}

	root := storetypes.NewDirectory()
	for _, key := range keys {
		insertKey(root, key)
	}
	return root, nil
}

// insertKey places one object key into the tree rooted at root.
func insertKey(root *storetypes.Directory, key string) {
	if key == "" {
		return
	}

	segments := strings.Split(key, "/")
	terminal := segments[len(segments)-1]
	node := root
	for _, seg := range segments[:len(segments)-1] {
		if seg == "" {
			continue
		}
		node = node.Child(seg)
	}

	// A trailing slash yields an empty terminal segment: the key is an
	// empty-directory marker and contributes no terminal entry.
	if terminal == "" {
		return
	}
	node.Files[terminal] = key
}
