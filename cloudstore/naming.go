// Package cloudstore provides bucket naming policy helpers.
package cloudstore

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

const (
	// BucketNamePrefix is the fixed prefix every managed bucket name carries.
	BucketNamePrefix = "airnode"

	// bucketNameSuffixBytes is the entropy of the generated name suffix.
	// 6 bytes encode to the 12 hex characters of the name format.
	bucketNameSuffixBytes = 6
)

// managedBucketName matches the full managed bucket name shape:
// the fixed prefix followed by a 12-character lowercase hex suffix.
var managedBucketName = regexp.MustCompile(`^` + BucketNamePrefix + `-[0-9a-f]{12}$`)

// GenerateBucketName produces a fresh managed bucket name. The suffix is drawn
// from crypto/rand, so concurrent provisioning calls are expected not to
// collide. The name is a function of the entropy source only, not of any
// provider configuration.
func GenerateBucketName() string {
	suffix := make([]byte, bucketNameSuffixBytes)
	// rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(suffix)
	return BucketNamePrefix + "-" + hex.EncodeToString(suffix)
}

// IsManagedBucketName reports whether name matches the managed bucket name
// format. Discovery uses it to filter an account's bucket list down to buckets
// this system owns, ignoring every other bucket format.
func IsManagedBucketName(name string) bool {
	return managedBucketName.MatchString(name)
}
