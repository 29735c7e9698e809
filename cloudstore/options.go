// Package cloudstore provides functional options for configuring client
// behavior. These options follow the functional options pattern for clean,
// composable configuration.
package cloudstore

import (
	"net/http"

	"github.com/input-output-hk/catalyst-forge-libs/fs"
	"google.golang.org/api/option"

	"github.com/Shr1ftyy/airnode/cloudstore/storetypes"
)

// WithEndpoint sets a custom provider endpoint URL.
// This is useful for S3-compatible services and for local testing against
// fake-gcs-server or LocalStack.
func WithEndpoint(endpoint string) storetypes.Option {
	return func(c *storetypes.ClientConfig) {
		c.Endpoint = endpoint
	}
}

// WithHTTPClient overrides the HTTP client used to reach the provider.
func WithHTTPClient(httpClient *http.Client) storetypes.Option {
	return func(c *storetypes.ClientConfig) {
		c.HTTPClient = httpClient
	}
}

// WithMaxRetries sets the maximum number of transport-level retry attempts.
// Default is 3 retries. Set to 0 to disable retries.
func WithMaxRetries(maxRetries int) storetypes.Option {
	return func(c *storetypes.ClientConfig) {
		c.MaxRetries = maxRetries
	}
}

// WithoutAuthentication disables credential resolution. Testing only.
func WithoutAuthentication() storetypes.Option {
	return func(c *storetypes.ClientConfig) {
		c.Anonymous = true
	}
}

// WithFilesystem sets the filesystem abstraction used to read local source
// files for store operations. Default is the OS filesystem rooted at /.
func WithFilesystem(filesystem fs.Filesystem) storetypes.Option {
	return func(c *storetypes.ClientConfig) {
		c.Filesystem = filesystem
	}
}

// WithGCSClientOptions passes additional client options through to the GCS
// SDK verbatim. Ignored by other backends.
func WithGCSClientOptions(opts ...option.ClientOption) storetypes.Option {
	return func(c *storetypes.ClientConfig) {
		c.GCSOptions = append(c.GCSOptions, opts...)
	}
}
