// Package cloudstore manages the dedicated deployment bucket on top of a flat
// key-value cloud object store. It provisions the one-and-only managed bucket
// per provider project, exposes a directory-like view over the flat object
// namespace, and performs safe recursive directory deletion.
//
// The layer trusts the underlying store's per-object atomicity: it implements
// no consistency protocol of its own, caches no listings, and supports no
// cross-bucket transactions. Every failure is wrapped into one of the typed
// errors in the errors subpackage with a fixed, greppable message.
//
// Example usage:
//
//	client, err := cloudstore.New(ctx, storetypes.ProviderConfig{
//	    Type:      storetypes.ProviderGCP,
//	    Region:    "us-east1",
//	    ProjectID: "my-project",
//	})
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	bucket, err := client.Discover(ctx)
//	if err != nil {
//	    return err
//	}
//	if bucket == "" {
//	    bucket, err = client.Create(ctx)
//	    if err != nil {
//	        return err
//	    }
//	}
package cloudstore
