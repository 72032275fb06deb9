package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	adapter "github.com/lumen-gallery/lumen-backend/internal/adapter/storage"
	"github.com/lumen-gallery/lumen-backend/internal/infrastructure/config"
)

// S3Store implements the same layout contract as LocalStore against an
// S3-compatible object store. Keys mirror the on-disk scheme; directory
// provisioning is a no-op because object stores have no directories.
type S3Store struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewS3Store(cfg config.S3Config) (*S3Store, error) {
	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				"",
			)
		},
	}

	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.UsePathStyle
		})
	}

	client := s3.New(s3.Options{}, opts...)

	return &S3Store{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
	}, nil
}

func (s *S3Store) Provision(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (s *S3Store) Save(ctx context.Context, collectionID uuid.UUID, category adapter.Category, filename string, data []byte) (string, error) {
	key := s.key(collectionID, category, filename)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String("image/jpeg"),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("uploading to s3: %w", err)
	}
	return s.url(key), nil
}

func (s *S3Store) Read(ctx context.Context, collectionID uuid.UUID, category adapter.Category, filename string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(collectionID, category, filename)),
	})
	if err != nil {
		return nil, fmt.Errorf("fetching from s3: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("reading s3 object: %w", err)
	}
	return data, nil
}

func (s *S3Store) DeletePhoto(ctx context.Context, collectionID uuid.UUID, filename string) error {
	base := adapter.BaseName(filename)

	for _, cat := range adapter.Categories() {
		prefix := fmt.Sprintf("%s/%s/", collectionID, cat)
		list, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket: aws.String(s.bucket),
			Prefix: aws.String(prefix),
		})
		if err != nil {
			return fmt.Errorf("listing s3 objects: %w", err)
		}
		for _, obj := range list.Contents {
			key := aws.ToString(obj.Key)
			if !strings.Contains(key, base) {
				continue
			}
			// DeleteObject succeeds for keys that are already gone.
			if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
				Bucket: aws.String(s.bucket),
				Key:    aws.String(key),
			}); err != nil {
				return fmt.Errorf("deleting from s3: %w", err)
			}
		}
	}
	return nil
}

func (s *S3Store) key(collectionID uuid.UUID, category adapter.Category, filename string) string {
	return fmt.Sprintf("%s/%s/%s", collectionID, category, filename)
}

func (s *S3Store) url(key string) string {
	if s.publicURL != "" {
		return fmt.Sprintf("%s/%s", s.publicURL, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}
