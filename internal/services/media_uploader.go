package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"vitrine/internal/config"
)

// UploadConstraints bound a single upload. Size is checked before the S3
// round trip, content type against the allow list.
type UploadConstraints struct {
	MaxSizeInMB  int64
	AllowedTypes []string
}

var (
	ImageConstraints = UploadConstraints{
		MaxSizeInMB:  8,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/webp"},
	}
	VideoConstraints = UploadConstraints{
		MaxSizeInMB:  64,
		AllowedTypes: []string{"video/mp4", "video/webm"},
	}
)

func (c UploadConstraints) Check(contentType string, size int64) error {
	if size > c.MaxSizeInMB<<20 {
		return fmt.Errorf("file exceeds %d MB", c.MaxSizeInMB)
	}
	for _, t := range c.AllowedTypes {
		if strings.EqualFold(t, contentType) {
			return nil
		}
	}
	return fmt.Errorf("content type %q not allowed", contentType)
}

// MediaUploader pushes ad media to S3 and hands back the public URL the
// client patches into the draft. Raw bytes never reach the wizard core.
type MediaUploader struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func NewMediaUploader(s3cfg *config.S3Config) *MediaUploader {
	return &MediaUploader{
		client:        s3cfg.Client,
		bucket:        s3cfg.Bucket,
		publicBaseURL: s3cfg.PublicBaseURL,
	}
}

// Upload stores body under a fresh key and returns the public URL.
func (u *MediaUploader) Upload(ctx context.Context, filename string, contentType string, body io.Reader) (string, error) {
	key := filepath.Join("ads", uuid.NewString()+filepath.Ext(filename))

	uploader := manager.NewUploader(u.client)
	_, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return strings.TrimRight(u.publicBaseURL, "/") + "/" + key, nil
}
