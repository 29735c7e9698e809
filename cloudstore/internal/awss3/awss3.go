package awss3

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/Shr1ftyy/airnode/cloudstore/internal/storeapi"
	"github.com/Shr1ftyy/airnode/cloudstore/storetypes"
)

// Store accesses Amazon S3 for one provider account.
type Store struct {
	client S3API
	region string
}

// New creates an S3-backed store. Credentials are resolved through the AWS
// default credential chain.
func New(ctx context.Context, cfg storetypes.ProviderConfig, clientCfg *storetypes.ClientConfig) (*Store, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, err
	}
	if clientCfg.MaxRetries > 0 {
		awsCfg.RetryMaxAttempts = clientCfg.MaxRetries
	}
	if clientCfg.HTTPClient != nil {
		awsCfg.HTTPClient = clientCfg.HTTPClient
	}

	var s3Opts []func(*s3.Options)
	if clientCfg.Endpoint != "" {
		// Custom endpoints (LocalStack, MinIO) need path-style addressing.
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(clientCfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	return &Store{
		client: s3.NewFromConfig(awsCfg, s3Opts...),
		region: cfg.Region,
	}, nil
}

// NewWithClient creates a store with a custom S3API implementation.
// This is primarily used for testing with mocked clients.
func NewWithClient(client S3API, region string) *Store {
	return &Store{client: client, region: region}
}

// ListBuckets lists every bucket owned by the account.
func (s *Store) ListBuckets(ctx context.Context) ([]storetypes.BucketDescriptor, error) {
	out, err := s.client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, err
	}

	buckets := make([]storetypes.BucketDescriptor, 0, len(out.Buckets))
	for _, b := range out.Buckets {
		buckets = append(buckets, storetypes.BucketDescriptor{
			Name:      aws.ToString(b.Name),
			CreatedAt: aws.ToTime(b.CreationDate),
		})
	}
	return buckets, nil
}

// CreateBucket creates the bucket in the configured region.
func (s *Store) CreateBucket(ctx context.Context, bucket string) error {
	input := &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	}
	// us-east-1 is the default location and must not be sent as a constraint.
	if s.region != "" && s.region != "us-east-1" {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(s.region),
		}
	}

	_, err := s.client.CreateBucket(ctx, input)
	return err
}

// HardenBucketAccess blocks every form of public exposure on the bucket.
func (s *Store) HardenBucketAccess(ctx context.Context, bucket string) error {
	_, err := s.client.PutPublicAccessBlock(ctx, &s3.PutPublicAccessBlockInput{
		Bucket: aws.String(bucket),
		PublicAccessBlockConfiguration: &types.PublicAccessBlockConfiguration{
			BlockPublicAcls:       aws.Bool(true),
			BlockPublicPolicy:     aws.Bool(true),
			IgnorePublicAcls:      aws.Bool(true),
			RestrictPublicBuckets: aws.Bool(true),
		},
	})
	return err
}

// policyDocument is the serialized form of an S3 bucket policy.
type policyDocument struct {
	Version   string            `json:"Version"`
	Statement []policyStatement `json:"Statement"`
}

type policyStatement struct {
	Sid       string              `json:"Sid"`
	Effect    string              `json:"Effect"`
	Principal string              `json:"Principal"`
	Action    string              `json:"Action"`
	Resource  []string            `json:"Resource"`
	Condition map[string]boolCond `json:"Condition"`
}

type boolCond map[string]string

// SetBucketPolicy sets a policy that rejects any access over insecure
// transport. S3 has no project viewer/editor identities; account-level
// access control stays with the account's IAM users and roles.
func (s *Store) SetBucketPolicy(ctx context.Context, bucket string) error {
	doc := policyDocument{
		Version: "2012-10-17",
		Statement: []policyStatement{
			{
				Sid:       "DenyInsecureTransport",
				Effect:    "Deny",
				Principal: "*",
				Action:    "s3:*",
				Resource: []string{
					"arn:aws:s3:::" + bucket,
					"arn:aws:s3:::" + bucket + "/*",
				},
				Condition: map[string]boolCond{
					"Bool": {"aws:SecureTransport": "false"},
				},
			},
		},
	}
	policy, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	_, err = s.client.PutBucketPolicy(ctx, &s3.PutBucketPolicyInput{
		Bucket: aws.String(bucket),
		Policy: aws.String(string(policy)),
	})
	return err
}

// ListObjectKeys returns every object key in the bucket, following
// continuation tokens across pages.
func (s *Store) ListObjectKeys(ctx context.Context, bucket string) ([]string, error) {
	var keys []string
	var continuationToken *string

	for {
		out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(bucket),
			ContinuationToken: continuationToken,
		})
		if err != nil {
			return nil, err
		}
		for _, obj := range out.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
		if !aws.ToBool(out.IsTruncated) {
			break
		}
		continuationToken = out.NextContinuationToken
	}
	return keys, nil
}

// PutObject uploads body to key, overwriting any existing object.
func (s *Store) PutObject(ctx context.Context, bucket, key, contentType string, body io.Reader) error {
	// PutObject needs a seekable body for signing; buffer the content.
	content, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	return err
}

// GetObject returns the full content of the object at key.
func (s *Store) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}

// CopyObject performs a server-side copy within the bucket.
func (s *Store) CopyObject(ctx context.Context, bucket, fromKey, toKey string) error {
	_, err := s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(bucket),
		Key:        aws.String(toKey),
		CopySource: aws.String(bucket + "/" + fromKey),
	})
	return err
}

// DeleteObject deletes a single object.
func (s *Store) DeleteObject(ctx context.Context, bucket, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	return err
}

// DeleteBucket deletes the bucket itself. The bucket must already be empty.
func (s *Store) DeleteBucket(ctx context.Context, bucket string) error {
	_, err := s.client.DeleteBucket(ctx, &s3.DeleteBucketInput{
		Bucket: aws.String(bucket),
	})
	return err
}

// Close releases resources held by the backend. The SDK client holds none.
func (s *Store) Close() error {
	return nil
}

var _ storeapi.Store = (*Store)(nil)
