// Package storetypes provides shared type definitions for the cloudstore module.
package storetypes

import (
	"net/http"
	"sort"
	"time"

	"github.com/input-output-hk/catalyst-forge-libs/fs"
	"google.golang.org/api/option"
)

// ProviderType identifies the cloud provider backing a deployment.
type ProviderType string

// Supported cloud providers
const (
	// ProviderGCP uses Google Cloud Storage
	ProviderGCP ProviderType = "gcp"

	// ProviderAWS uses Amazon S3
	ProviderAWS ProviderType = "aws"
)

// ProviderConfig identifies the physical account/project that owns the managed
// bucket. It is supplied by the caller, never mutated by this module, and
// outlives every operation performed with it.
type ProviderConfig struct {
	// Type selects the provider backend.
	Type ProviderType

	// Region is the location the bucket is created in.
	Region string

	// ProjectID is the cloud project (GCP) or account alias (AWS) that owns
	// the bucket and whose identities receive the bucket policy.
	ProjectID string

	// DisableConcurrencyReservations is carried through from the deployment
	// configuration. This layer does not interpret it.
	DisableConcurrencyReservations bool
}

// BucketDescriptor describes one bucket returned by a bucket listing.
type BucketDescriptor struct {
	// Name is the bucket name.
	Name string

	// CreatedAt is when the bucket was created, when the provider reports it.
	CreatedAt time.Time
}

// Directory is one level of the directory-like view reconstructed from a flat
// object listing. A directory maps child names to either nested directories or
// terminal entries pointing at the full object key.
//
// Trees are built fresh from a listing snapshot and are owned by the caller for
// the duration of one operation. They are never kept consistent with concurrent
// mutations of the underlying store.
type Directory struct {
	// Dirs holds nested directory levels keyed by path segment.
	Dirs map[string]*Directory

	// Files holds terminal entries: base name -> full object key.
	Files map[string]string
}

// NewDirectory returns an empty directory node.
func NewDirectory() *Directory {
	return &Directory{
		Dirs:  make(map[string]*Directory),
		Files: make(map[string]string),
	}
}

// Child returns the nested directory with the given name, creating it if needed.
func (d *Directory) Child(name string) *Directory {
	if sub, ok := d.Dirs[name]; ok {
		return sub
	}
	sub := NewDirectory()
	d.Dirs[name] = sub
	return sub
}

// Empty reports whether the directory has no files and no subdirectories.
func (d *Directory) Empty() bool {
	return len(d.Dirs) == 0 && len(d.Files) == 0
}

// DirNames returns the names of nested directories in sorted order.
func (d *Directory) DirNames() []string {
	names := make([]string, 0, len(d.Dirs))
	for name := range d.Dirs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FileNames returns the names of terminal entries in sorted order.
func (d *Directory) FileNames() []string {
	names := make([]string, 0, len(d.Files))
	for name := range d.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Keys returns the full object keys of every terminal entry reachable from d,
// in depth-first sorted order.
func (d *Directory) Keys() []string {
	var keys []string
	for _, name := range d.DirNames() {
		keys = append(keys, d.Dirs[name].Keys()...)
	}
	for _, name := range d.FileNames() {
		keys = append(keys, d.Files[name])
	}
	return keys
}

// ClientConfig holds the configuration assembled from functional options.
type ClientConfig struct {
	// Endpoint overrides the provider endpoint URL. Used for
	// S3-compatible services, fake-gcs-server, and LocalStack testing.
	Endpoint string

	// HTTPClient overrides the transport used to reach the provider.
	HTTPClient *http.Client

	// MaxRetries is the maximum number of transport-level retry attempts.
	MaxRetries int

	// Anonymous disables authentication. Testing only.
	Anonymous bool

	// Filesystem is the filesystem abstraction used to read local files.
	Filesystem fs.Filesystem

	// GCSOptions are passed through to the GCS client verbatim.
	GCSOptions []option.ClientOption
}

// Option configures the client during construction.
type Option func(*ClientConfig)
