// Package storage wraps S3 presigned uploads for product and review images.
// The dashboard uploads directly to the bucket with a presigned PUT URL; the
// API never proxies image bytes.
package storage

import (
	"context"
	"fmt"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Presigner generates presigned PUT URLs against a single bucket.
type Presigner struct {
	presigner *s3.PresignClient
	bucket    string
}

// NewPresigner loads the ambient AWS config and builds a presign client.
func NewPresigner(ctx context.Context, bucket string) (*Presigner, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &Presigner{
		presigner: s3.NewPresignClient(s3.NewFromConfig(cfg)),
		bucket:    bucket,
	}, nil
}

// PresignPut returns a presigned PUT URL and the object key for the upload.
func (p *Presigner) PresignPut(ctx context.Context, key, contentType string, expirySeconds int64) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      sdkaws.String(p.bucket),
		Key:         sdkaws.String(key),
		ContentType: sdkaws.String(contentType),
	}

	presigned, err := p.presigner.PresignPutObject(ctx, input, func(o *s3.PresignOptions) {
		o.Expires = time.Duration(expirySeconds) * time.Second
	})
	if err != nil {
		return "", fmt.Errorf("failed to presign put object: %w", err)
	}
	return presigned.URL, nil
}

// Bucket returns the configured bucket name.
func (p *Presigner) Bucket() string { return p.bucket }
