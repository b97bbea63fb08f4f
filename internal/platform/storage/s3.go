// Package storage issues presigned S3 upload slots for pet images.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/bethehero/adopt_backend/internal/core/domain"
)

// presignTTL bounds how long an issued upload URL stays usable.
const presignTTL = 5 * time.Minute

// UploadSlot is a presigned PUT target plus the storage path the client
// must echo back when attaching the image.
type UploadSlot struct {
	UploadURL   string
	StoragePath string
	ExpiresIn   int
}

// ObjectStore issues upload slots scoped to a pet's storage prefix.
type ObjectStore interface {
	CreatePetImageUploadSlot(ctx context.Context, petID, fileName, contentType string) (*UploadSlot, error)
	PublicURL(storagePath string) string
}

// S3Store implements ObjectStore against an S3 bucket.
type S3Store struct {
	client *s3.Client
	bucket string
	region string
}

// NewS3Store loads the default AWS config and returns a store bound to the
// given bucket.
func NewS3Store(ctx context.Context, region, bucket string) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &S3Store{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

// CreatePetImageUploadSlot generates a presigned PUT URL under the pet's
// storage prefix. The object name is randomized; only the extension of the
// client's file name is kept.
func (s *S3Store) CreatePetImageUploadSlot(ctx context.Context, petID, fileName, contentType string) (*UploadSlot, error) {
	ext := strings.ToLower(path.Ext(fileName))
	key := domain.PetImagePathPrefix(petID) + uuid.NewString() + ext

	presignClient := s3.NewPresignClient(s.client)
	request, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = presignTTL
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate pre-signed URL: %w", err)
	}

	return &UploadSlot{
		UploadURL:   request.URL,
		StoragePath: key,
		ExpiresIn:   int(presignTTL.Seconds()),
	}, nil
}

// PublicURL returns the canonical object URL for a stored path.
func (s *S3Store) PublicURL(storagePath string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, storagePath)
}
