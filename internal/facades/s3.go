package facades

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipes/internal/logger"
	"github.com/sbilibin2017/gw-recipes/internal/models"
)

// S3PutObjectAPI is the part of the S3 client the host needs.
type S3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// NewS3Client loads the default AWS configuration for region, using static
// credentials when an access key is given.
func NewS3Client(ctx context.Context, region, accessKeyID, secretAccessKey string) (*s3.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if accessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg), nil
}

var imageExtensions = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// S3Host stores images as public objects of a bucket.
type S3Host struct {
	client    S3PutObjectAPI
	bucket    string
	region    string
	folder    string
	publicURL string
}

// NewS3Host creates a new facade. An empty publicURL falls back to the
// bucket's virtual-hosted endpoint.
func NewS3Host(client S3PutObjectAPI, bucket, region, folder, publicURL string) *S3Host {
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}
	return &S3Host{
		client:    client,
		bucket:    bucket,
		region:    region,
		folder:    strings.Trim(folder, "/"),
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Upload puts the image under <folder>/<uuid><ext>; the key is the public id.
func (h *S3Host) Upload(ctx context.Context, data []byte, contentType string) (*models.UploadResult, error) {
	key := uuid.NewString() + imageExtensions[contentType]
	if h.folder != "" {
		key = h.folder + "/" + key
	}

	_, err := h.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(h.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		logger.Log.Errorw("failed to put image to s3", "bucket", h.bucket, "key", key, "error", err)
		return nil, err
	}

	return &models.UploadResult{URL: h.publicURL + "/" + key, PublicID: key}, nil
}
