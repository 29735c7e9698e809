// Package cloudstore provides client initialization and configuration.
package cloudstore

import (
	"context"
	"fmt"

	"github.com/input-output-hk/catalyst-forge-libs/fs"
	"github.com/input-output-hk/catalyst-forge-libs/fs/billy"

	"github.com/Shr1ftyy/airnode/cloudstore/internal/awss3"
	"github.com/Shr1ftyy/airnode/cloudstore/internal/gcs"
	"github.com/Shr1ftyy/airnode/cloudstore/internal/storeapi"
	"github.com/Shr1ftyy/airnode/cloudstore/storetypes"
)

// Client performs bucket management operations for one provider project.
// It is bound to a single immutable ProviderConfig for its whole lifetime and
// holds no other state across calls: each operation is one request/response
// unit against the remote store.
type Client struct {
	// cfg identifies the account/project that owns the managed bucket.
	cfg storetypes.ProviderConfig

	// store is the provider backend the operations are issued against.
	store storeapi.Store

	// fs is the filesystem abstraction used to read local source files.
	fs fs.Filesystem
}

// New creates a client for the given provider configuration.
// The backend is selected by cfg.Type; credentials are resolved through the
// provider SDK's default chain.
//
// Example:
//
//	client, err := cloudstore.New(ctx, storetypes.ProviderConfig{
//	    Type:      storetypes.ProviderGCP,
//	    Region:    "us-east1",
//	    ProjectID: "my-project",
//	})
func New(ctx context.Context, cfg storetypes.ProviderConfig, opts ...storetypes.Option) (*Client, error) {
	clientCfg := &storetypes.ClientConfig{
		MaxRetries: 3, // Default retry count
	}
	for _, opt := range opts {
		opt(clientCfg)
	}

	var store storeapi.Store
	var err error
	switch cfg.Type {
	case storetypes.ProviderGCP:
		store, err = gcs.New(ctx, cfg, clientCfg)
	case storetypes.ProviderAWS:
		store, err = awss3.New(ctx, cfg, clientCfg)
	default:
		return nil, fmt.Errorf("unsupported provider type %q", cfg.Type)
	}
	if err != nil {
		return nil, err
	}

	filesystem := clientCfg.Filesystem
	if filesystem == nil {
		// Default to OS filesystem rooted at /
		filesystem = billy.NewOSFS("/")
	}

	return &Client{
		cfg:   cfg,
		store: store,
		fs:    filesystem,
	}, nil
}

// NewWithStore creates a client backed by a custom Store implementation.
// This is primarily used for testing with mocked backends.
func NewWithStore(cfg storetypes.ProviderConfig, store storeapi.Store) *Client {
	return &Client{
		cfg:   cfg,
		store: store,
		fs:    billy.NewOSFS("/"), // Default to OS filesystem
	}
}

// SetFilesystem sets the filesystem implementation used to read local files.
// This is useful for testing with an in-memory filesystem.
func (c *Client) SetFilesystem(filesystem fs.Filesystem) {
	c.fs = filesystem
}

// Config returns the provider configuration the client is bound to.
func (c *Client) Config() storetypes.ProviderConfig {
	return c.cfg
}

// Close releases any resources held by the provider backend.
func (c *Client) Close() error {
	return c.store.Close()
}
