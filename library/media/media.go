// Package media stores uploaded images in an S3-compatible object
// store and resolves them back from their public URLs.
package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/library/log"
)

const uploadPrefix = "uploads"

// Config is the object store connection configuration.
type Config struct {
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
	// PublicURL is the base URL under which stored objects are served,
	// e.g. "https://s3.example.com/zuinder".
	PublicURL string
	UseSSL    bool
}

// Store uploads and deletes media objects.
type Store struct {
	cli       *minio.Client
	bucket    string
	publicURL string
}

// New creates a media store backed by the configured bucket.
func New(cfg Config) (*Store, error) {
	if cfg.Endpoint == "" || cfg.Bucket == "" {
		return nil, errors.New("media endpoint and bucket are required")
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "new minio client")
	}

	return &Store{
		cli:       cli,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
	}, nil
}

// Upload stores the content under a fresh object key and returns the
// public URL it will be served from.
func (s *Store) Upload(ctx context.Context,
	filename, contentType string, reader io.Reader, size int64) (string, error) {
	objKey := fmt.Sprintf("%s/%s%s", uploadPrefix, uuid.NewString(), path.Ext(filename))

	if _, err := s.cli.PutObject(ctx,
		s.bucket,
		objKey,
		reader,
		size,
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	); err != nil {
		return "", errors.Wrapf(err, "put object `%s`", objKey)
	}

	log.Logger.Info("uploaded media object", zap.String("objkey", objKey))
	return s.publicURL + "/" + objKey, nil
}

// Owns reports whether url points at an object stored by this store.
func (s *Store) Owns(url string) bool {
	return s.publicURL != "" && strings.HasPrefix(url, s.publicURL+"/")
}

// Delete removes the object behind the given public URL.
func (s *Store) Delete(ctx context.Context, url string) error {
	objKey, err := s.objectKey(url)
	if err != nil {
		return errors.Wrap(err, "resolve object key")
	}

	if err := s.cli.RemoveObject(ctx, s.bucket, objKey,
		minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrapf(err, "remove object `%s`", objKey)
	}

	return nil
}

// objectKey extracts the object key from a public URL issued by Upload.
func (s *Store) objectKey(url string) (string, error) {
	if !s.Owns(url) {
		return "", errors.Errorf("url `%s` does not belong to this store", url)
	}

	return strings.TrimPrefix(url, s.publicURL+"/"), nil
}
