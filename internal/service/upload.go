package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/platefeed/backend/config"
)

// ErrNoImage is returned when an upload request carries no image payload.
var ErrNoImage = errors.New("no image provided")

// UploadService stores recipe images. With an S3 bucket configured the
// payload is written through and a public URL returned; without one the
// data URI itself is returned so the app still works in development.
type UploadService struct {
	s3Config *config.S3Config
}

// NewUploadService creates a new UploadService. s3Config may be nil.
func NewUploadService(s3Config *config.S3Config) *UploadService {
	return &UploadService{s3Config: s3Config}
}

// UploadImage accepts a base64 payload, with or without a data URI prefix,
// and returns the URL clients should reference.
func (s *UploadService) UploadImage(ctx context.Context, image string) (string, error) {
	if image == "" {
		return "", ErrNoImage
	}

	if s.s3Config == nil {
		return image, nil
	}

	contentType, data, err := decodeImagePayload(image)
	if err != nil {
		return "", err
	}

	ext := "png"
	if parts := strings.SplitN(contentType, "/", 2); len(parts) == 2 && parts[1] != "" {
		ext = parts[1]
	}
	fileName := fmt.Sprintf("recipe-images/%s.%s", uuid.New().String(), ext)

	_, err = s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, fileName)
	log.Printf("[UploadService] stored image at %s", publicURL)
	return publicURL, nil
}

// decodeImagePayload splits an optional "data:image/...;base64," prefix off
// and decodes the remainder.
func decodeImagePayload(image string) (contentType string, data []byte, err error) {
	contentType = "image/png"
	payload := image

	if strings.HasPrefix(image, "data:") {
		rest := strings.TrimPrefix(image, "data:")
		semi := strings.Index(rest, ";base64,")
		if semi < 0 {
			return "", nil, errors.New("unsupported image encoding")
		}
		if rest[:semi] != "" {
			contentType = rest[:semi]
		}
		payload = rest[semi+len(";base64,"):]
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("invalid base64 image: %w", err)
	}
	return contentType, data, nil
}
