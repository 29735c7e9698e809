// Package validation provides centralized input validation for bucket names
// and object keys. Inputs are validated before being sent to the provider so
// malformed paths fail locally with a clear message instead of a remote 4xx.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ValidateBucketName validates that a bucket name is DNS-compliant.
// The rules are the common subset accepted by GCS and S3.
func ValidateBucketName(bucket string) error {
	if bucket == "" {
		return errors.New("bucket name cannot be empty")
	}
	if len(bucket) < 3 || len(bucket) > 63 {
		return errors.New("bucket name must be between 3 and 63 characters long")
	}
	for _, char := range bucket {
		if !isValidBucketChar(char) {
			return errors.New("bucket name can only contain lowercase letters, numbers, dots, and hyphens")
		}
	}
	if bucket[0] == '-' || bucket[0] == '.' || bucket[len(bucket)-1] == '-' || bucket[len(bucket)-1] == '.' {
		return errors.New("bucket name cannot start or end with a hyphen or dot")
	}
	if strings.Contains(bucket, "..") || strings.Contains(bucket, "--") {
		return errors.New("bucket name cannot contain two adjacent periods or hyphens")
	}
	return nil
}

// ValidateObjectKey validates that an object key is a well-formed
// slash-delimited path into the flat namespace.
func ValidateObjectKey(key string) error {
	if key == "" {
		return errors.New("object key cannot be empty")
	}
	if strings.HasPrefix(key, "/") {
		return errors.New("object key cannot have a leading slash")
	}
	if len(key) > 1024 {
		return errors.New("object key cannot exceed 1024 characters")
	}
	for _, seg := range strings.Split(key, "/") {
		if seg == ".." || seg == "." {
			return fmt.Errorf("object key cannot contain path segment %q", seg)
		}
	}
	for _, char := range key {
		if unicode.IsControl(char) {
			return errors.New("object key cannot contain control characters")
		}
	}
	return nil
}

// isValidBucketChar checks if a character is valid in a bucket name
func isValidBucketChar(char rune) bool {
	return (char >= '0' && char <= '9') || (char >= 'a' && char <= 'z') || char == '.' || char == '-'
}
