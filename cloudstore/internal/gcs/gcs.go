// Package gcs implements the provider store on Google Cloud Storage.
package gcs

import (
	"context"
	"errors"
	"io"

	"cloud.google.com/go/iam"
	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/Shr1ftyy/airnode/cloudstore/internal/storeapi"
	"github.com/Shr1ftyy/airnode/cloudstore/storetypes"
)

// Legacy storage roles granted by the bucket policy. The viewer identity gets
// the reader pair; the editor and owner identities get the owner pair.
const (
	roleLegacyBucketReader iam.RoleName = "roles/storage.legacyBucketReader"
	roleLegacyObjectReader iam.RoleName = "roles/storage.legacyObjectReader"
	roleLegacyBucketOwner  iam.RoleName = "roles/storage.legacyBucketOwner"
	roleLegacyObjectOwner  iam.RoleName = "roles/storage.legacyObjectOwner"
)

// Store accesses Google Cloud Storage for one provider project.
type Store struct {
	client    *storage.Client
	projectID string
	region    string
}

// New creates a GCS-backed store. Credentials are resolved through the SDK's
// default chain unless overridden via the client configuration.
func New(ctx context.Context, cfg storetypes.ProviderConfig, clientCfg *storetypes.ClientConfig) (*Store, error) {
	var opts []option.ClientOption
	if clientCfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(clientCfg.Endpoint))
	}
	if clientCfg.Anonymous {
		opts = append(opts, option.WithoutAuthentication())
	}
	if clientCfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(clientCfg.HTTPClient))
	}
	// User-supplied options come last so they take priority.
	opts = append(opts, clientCfg.GCSOptions...)

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &Store{
		client:    client,
		projectID: cfg.ProjectID,
		region:    cfg.Region,
	}, nil
}

// ListBuckets lists every bucket of the configured project.
func (s *Store) ListBuckets(ctx context.Context) ([]storetypes.BucketDescriptor, error) {
	var buckets []storetypes.BucketDescriptor
	it := s.client.Buckets(ctx, s.projectID)
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		buckets = append(buckets, storetypes.BucketDescriptor{
			Name:      attrs.Name,
			CreatedAt: attrs.Created,
		})
	}
	return buckets, nil
}

// CreateBucket creates the bucket in the configured region.
func (s *Store) CreateBucket(ctx context.Context, bucket string) error {
	return s.client.Bucket(bucket).Create(ctx, s.projectID, &storage.BucketAttrs{
		Location: s.region,
	})
}

// HardenBucketAccess switches the bucket to uniform bucket-level access and
// enforces public access prevention, disabling per-object ACLs and blocking
// any public exposure.
func (s *Store) HardenBucketAccess(ctx context.Context, bucket string) error {
	_, err := s.client.Bucket(bucket).Update(ctx, storage.BucketAttrsToUpdate{
		UniformBucketLevelAccess: &storage.UniformBucketLevelAccess{Enabled: true},
		PublicAccessPrevention:   storage.PublicAccessPreventionEnforced,
	})
	return err
}

// SetBucketPolicy grants the project's viewer identity read-only object and
// bucket access and the project's editor/owner identities full read-write
// access.
func (s *Store) SetBucketPolicy(ctx context.Context, bucket string) error {
	handle := s.client.Bucket(bucket).IAM()
	policy, err := handle.Policy(ctx)
	if err != nil {
		return err
	}

	viewer := "projectViewer:" + s.projectID
	policy.Add(viewer, roleLegacyBucketReader)
	policy.Add(viewer, roleLegacyObjectReader)
	for _, member := range []string{"projectEditor:" + s.projectID, "projectOwner:" + s.projectID} {
		policy.Add(member, roleLegacyBucketOwner)
		policy.Add(member, roleLegacyObjectOwner)
	}

	return handle.SetPolicy(ctx, policy)
}

// ListObjectKeys returns every object key in the bucket.
func (s *Store) ListObjectKeys(ctx context.Context, bucket string) ([]string, error) {
	var keys []string
	it := s.client.Bucket(bucket).Objects(ctx, &storage.Query{})
	for {
		obj, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		keys = append(keys, obj.Name)
	}
	return keys, nil
}

// PutObject uploads body to key, overwriting any existing object.
func (s *Store) PutObject(ctx context.Context, bucket, key, contentType string, body io.Reader) error {
	w := s.client.Bucket(bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, body); err != nil {
		w.Close()
		return err
	}
	// The upload is not finalized until Close returns.
	return w.Close()
}

// GetObject returns the full content of the object at key.
func (s *Store) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	r, err := s.client.Bucket(bucket).Object(key).NewReader(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// CopyObject performs a server-side copy within the bucket.
func (s *Store) CopyObject(ctx context.Context, bucket, fromKey, toKey string) error {
	bkt := s.client.Bucket(bucket)
	_, err := bkt.Object(toKey).CopierFrom(bkt.Object(fromKey)).Run(ctx)
	return err
}

// DeleteObject deletes a single object.
func (s *Store) DeleteObject(ctx context.Context, bucket, key string) error {
	return s.client.Bucket(bucket).Object(key).Delete(ctx)
}

// DeleteBucket deletes the bucket itself. The bucket must already be empty.
func (s *Store) DeleteBucket(ctx context.Context, bucket string) error {
	return s.client.Bucket(bucket).Delete(ctx)
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

var _ storeapi.Store = (*Store)(nil)
