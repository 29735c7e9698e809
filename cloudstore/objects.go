// Package cloudstore provides per-object store, fetch, and copy operations.
package cloudstore

import (
	"context"
	"errors"
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	storeerrors "github.com/Shr1ftyy/airnode/cloudstore/errors"
	"github.com/Shr1ftyy/airnode/cloudstore/internal/validation"
)

const (
	// DefaultContentType is used when content type detection fails.
	DefaultContentType = "application/octet-stream"
)

// StoreFile uploads the content of a local file to the given key, overwriting
// any existing object at that key. The content is stored unchanged; the
// content type is sniffed from the file with an extension-based fallback.
//
// Errors:
//   - *errors.StoreFileError: validation, local read, or upload failed
func (c *Client) StoreFile(ctx context.Context, bucket, key, srcPath string) error {
	if srcPath == "" {
		return &storeerrors.StoreFileError{
			Path: srcPath, Bucket: bucket,
			Err: errors.New("source path cannot be empty"),
		}
	}
	if err := validation.ValidateObjectKey(key); err != nil {
		return &storeerrors.StoreFileError{Path: srcPath, Bucket: bucket, Err: err}
	}

	info, err := c.fs.Stat(srcPath)
	if err != nil {
		return &storeerrors.StoreFileError{Path: srcPath, Bucket: bucket, Err: err}
	}
	if info.IsDir() {
		return &storeerrors.StoreFileError{
			Path: srcPath, Bucket: bucket,
			Err: errors.New("source path points to a directory, not a file"),
		}
	}

	file, err := c.fs.Open(srcPath)
	if err != nil {
		return &storeerrors.StoreFileError{Path: srcPath, Bucket: bucket, Err: err}
	}
	defer file.Close()

	if err := c.store.PutObject(ctx, bucket, key, c.detectContentType(srcPath), file); err != nil {
		return &storeerrors.StoreFileError{Path: srcPath, Bucket: bucket, Err: err}
	}
	return nil
}

// FetchFile downloads and returns the full content of the object at key.
// The content is returned unchanged. A missing object surfaces like any other
// provider failure; not-found is not a distinct code path here.
//
// Errors:
//   - *errors.FetchFileError: validation or download failed
func (c *Client) FetchFile(ctx context.Context, bucket, key string) ([]byte, error) {
	if err := validation.ValidateObjectKey(key); err != nil {
		return nil, &storeerrors.FetchFileError{Key: key, Bucket: bucket, Err: err}
	}

	content, err := c.store.GetObject(ctx, bucket, key)
	if err != nil {
		return nil, &storeerrors.FetchFileError{Key: key, Bucket: bucket, Err: err}
	}
	return content, nil
}

// CopyFile performs a server-side copy from fromKey to toKey within the same
// bucket, overwriting any existing object at toKey.
//
// Errors:
//   - *errors.CopyFileError: validation or the copy call failed
func (c *Client) CopyFile(ctx context.Context, bucket, fromKey, toKey string) error {
	if err := validation.ValidateObjectKey(fromKey); err != nil {
		return &storeerrors.CopyFileError{From: fromKey, To: toKey, Bucket: bucket, Err: err}
	}
	if err := validation.ValidateObjectKey(toKey); err != nil {
		return &storeerrors.CopyFileError{From: fromKey, To: toKey, Bucket: bucket, Err: err}
	}

	if err := c.store.CopyObject(ctx, bucket, fromKey, toKey); err != nil {
		return &storeerrors.CopyFileError{From: fromKey, To: toKey, Bucket: bucket, Err: err}
	}
	return nil
}

// detectContentType determines the content type using mimetype where
// possible, falling back to extension-based lookup.
func (c *Client) detectContentType(path string) string {
	file, err := c.fs.Open(path)
	if err != nil {
		return detectContentTypeFromExtension(path)
	}
	defer file.Close()

	// Read first 512 bytes for content detection
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	if n > 0 {
		if mt := mimetype.Detect(buf[:n]); mt != nil {
			return mt.String()
		}
	}

	return detectContentTypeFromExtension(path)
}

// detectContentTypeFromExtension detects content type from the file extension
func detectContentTypeFromExtension(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != "" {
		if byExt := mime.TypeByExtension(ext); byExt != "" {
			return byExt
		}
	}
	return DefaultContentType
}
