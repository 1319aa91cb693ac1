package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/skobelevsky/authgate/internal/logger"
)

// Uploader stores a blob and returns its public URL.
type Uploader interface {
	UploadBytes(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// S3Uploader stores profile pictures in an S3-compatible bucket.
type S3Uploader struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewS3Uploader builds an uploader against an S3-compatible endpoint
// (AWS or MinIO) using static credentials.
func NewS3Uploader(ctx context.Context, endpoint, region, bucket, accessKey, secretKey, publicBaseURL string) (*S3Uploader, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKey,
			secretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Uploader{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

// StorageKey builds a date-partitioned object key.
func StorageKey(prefix string) string {
	d := time.Now()
	return fmt.Sprintf("%s/%d/%02d/%v", prefix, d.Year(), d.Month(), uuid.New())
}

// UploadBytes puts the object and returns its public URL.
func (u *S3Uploader) UploadBytes(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.Log.Errorw("s3 put object failed", "bucket", u.bucket, "key", key, "error", err)
		return "", err
	}

	url := fmt.Sprintf("%s/%s/%s", u.publicBaseURL, u.bucket, key)
	logger.Log.Infow("object stored", "bucket", u.bucket, "key", key, "url", url)
	return url, nil
}
