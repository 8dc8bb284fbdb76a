// LingoTeach - language-teaching voice skill backend
// License: MIT

package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/lingoteach/lingoteach/pkg/logger"
)

// S3Store stores audio objects in a single S3 bucket. Objects are written
// publicly readable so the platform can stream them back to the device.
type S3Store struct {
	client *s3.Client
	bucket string
}

func NewS3Store(cfg aws.Config, bucket string) *S3Store {
	return &S3Store{client: s3.NewFromConfig(cfg), bucket: bucket}
}

func (s *S3Store) Put(ctx context.Context, key string, body []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(body),
		ACL:          types.ObjectCannedACLPublicRead,
		StorageClass: types.StorageClassReducedRedundancy,
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}

	logger.DebugCF("gateway", "Uploaded object", map[string]any{
		"bucket":     s.bucket,
		"key":        key,
		"size_bytes": len(body),
	})

	return nil
}

func (s *S3Store) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("head object %s: %w", key, err)
	}
	return true, nil
}

func (s *S3Store) URL(key string) string {
	return fmt.Sprintf("https://s3.amazonaws.com/%s/%s", s.bucket, key)
}
