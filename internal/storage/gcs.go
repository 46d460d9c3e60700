package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSStore uploads objects to a Google Cloud Storage bucket and
// returns their public URL.
type GCSStore struct {
	client *storage.Client
	bucket string
}

// NewGCSStore prefers ADC (service account / GOOGLE_APPLICATION_CREDENTIALS).
// Set GCS_CREDENTIALS_JSON to provide explicit JSON locally.
func NewGCSStore(ctx context.Context) (*GCSStore, error) {
	bucket := os.Getenv("GCS_BUCKET")
	if bucket == "" {
		return nil, errors.New("GCS_BUCKET is required")
	}

	var client *storage.Client
	var err error
	if credJSON := os.Getenv("GCS_CREDENTIALS_JSON"); strings.TrimSpace(credJSON) != "" {
		client, err = storage.NewClient(ctx, option.WithCredentialsJSON([]byte(credJSON)))
	} else {
		client, err = storage.NewClient(ctx)
	}
	if err != nil {
		return nil, err
	}

	return &GCSStore{client: client, bucket: bucket}, nil
}

func (s *GCSStore) Upload(ctx context.Context, objectName, contentType string, r io.Reader) (string, error) {
	wc := s.client.Bucket(s.bucket).Object(objectName).NewWriter(ctx)
	wc.ContentType = contentType

	if _, err := io.Copy(wc, r); err != nil {
		wc.Close()
		return "", err
	}
	if err := wc.Close(); err != nil {
		return "", err
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, objectName), nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}
