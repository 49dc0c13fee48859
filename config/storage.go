package config

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds S3 client and bucket info
type S3Config struct {
	Client     *s3.Client
	BucketName string
}

// NewS3Config initializes the S3 client for image storage. Returns nil
// when no bucket is configured so the upload service stays in
// passthrough mode.
func NewS3Config(ctx context.Context, cfg *Config) (*S3Config, error) {
	if cfg.S3Bucket == "" {
		return nil, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, err
	}

	return &S3Config{
		Client:     s3.NewFromConfig(awsCfg),
		BucketName: cfg.S3Bucket,
	}, nil
}
