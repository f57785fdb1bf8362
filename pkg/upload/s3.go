package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store keeps files in an S3 bucket under a key prefix. Claimed objects
// are deleted asynchronously and the returned File carries a presigned URL
// for direct access.
type S3Store struct {
	client    *s3.Client
	bucket    string
	prefix    string
	maxSize   int64
	urlExpiry time.Duration
}

// NewS3Store creates an S3-backed store.
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	store := upload.NewS3Store(s3.NewFromConfig(cfg), "my-bucket", "dropkit/", 10<<20)
func NewS3Store(client *s3.Client, bucket, prefix string, maxSize int64) *S3Store {
	return &S3Store{
		client:    client,
		bucket:    bucket,
		prefix:    prefix,
		maxSize:   maxSize,
		urlExpiry: 24 * time.Hour,
	}
}

// WithURLExpiry sets how long presigned URLs stay valid.
func (s *S3Store) WithURLExpiry(d time.Duration) *S3Store {
	s.urlExpiry = d
	return s
}

// Save implements Store.
func (s *S3Store) Save(filename, contentType string, size int64, r io.Reader) (string, error) {
	if s.maxSize > 0 && size > s.maxSize {
		return "", ErrTooLarge
	}

	id := newStoreID()

	// Buffered so the size limit can be enforced before PutObject.
	var buf bytes.Buffer
	reader := r
	if s.maxSize > 0 {
		reader = io.LimitReader(r, s.maxSize+1)
	}
	n, err := io.Copy(&buf, reader)
	if err != nil {
		return "", fmt.Errorf("upload: buffer content: %w", err)
	}
	if s.maxSize > 0 && n > s.maxSize {
		return "", ErrTooLarge
	}

	_, err = s.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key(id)),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String(contentType),
		Metadata: map[string]string{
			"original-filename": filename,
			"stored-at":         time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", fmt.Errorf("upload: s3 put: %w", err)
	}
	return id, nil
}

// Claim implements Store.
func (s *S3Store) Claim(id string) (*File, error) {
	ctx := context.Background()
	key := s.key(id)

	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, ErrNotFound
	}
	obj, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, ErrNotFound
	}

	filename := id
	if fn, ok := head.Metadata["original-filename"]; ok {
		filename = fn
	}
	contentType := "application/octet-stream"
	if head.ContentType != nil {
		contentType = *head.ContentType
	}
	var size int64
	if head.ContentLength != nil {
		size = *head.ContentLength
	}

	url := ""
	presigned, err := s3.NewPresignClient(s.client).PresignGetObject(ctx,
		&s3.GetObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		},
		s3.WithPresignExpires(s.urlExpiry),
	)
	if err == nil {
		url = presigned.URL
	}

	// Claimed means consumed; the object is removed out of band.
	go func() {
		s.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})
	}()

	return &File{
		ID:          id,
		Filename:    filename,
		ContentType: contentType,
		Size:        size,
		URL:         url,
		Reader:      obj.Body,
	}, nil
}

// Cleanup implements Store.
func (s *S3Store) Cleanup(maxAge time.Duration) error {
	ctx := context.Background()
	cutoff := time.Now().Add(-maxAge)

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})

	var expired []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("upload: s3 list: %w", err)
		}
		for _, obj := range page.Contents {
			if obj.Key != nil && obj.LastModified != nil && obj.LastModified.Before(cutoff) {
				expired = append(expired, *obj.Key)
			}
		}
	}

	for _, key := range expired {
		s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})
	}
	return nil
}

func (s *S3Store) key(id string) string {
	return s.prefix + id
}
