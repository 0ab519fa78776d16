package archive

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	marketplaceconfig "github.com/gaze-network/marketplace-indexer/modules/marketplace/config"
)

var _ ObjectStore = (*S3Store)(nil)

type S3Store struct {
	client *s3.Client
	bucket string
}

// NewS3Store loads credentials from the default AWS chain (environment, shared config, instance role).
func NewS3Store(ctx context.Context, conf marketplaceconfig.ArchiveConfig) (*S3Store, error) {
	if conf.Bucket == "" {
		return nil, errors.Wrap(errs.InvalidArgument, "archive bucket is required")
	}
	sdkConfig, err := config.LoadDefaultConfig(ctx, config.WithRegion(conf.Region))
	if err != nil {
		return nil, errors.Wrap(err, "can't load aws user config")
	}
	client := s3.NewFromConfig(sdkConfig, func(o *s3.Options) {
		if conf.Endpoint != "" {
			o.BaseEndpoint = aws.String(conf.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Store{
		client: client,
		bucket: conf.Bucket,
	}, nil
}

func (s *S3Store) Upload(ctx context.Context, key string, body []byte) error {
	uploader := manager.NewUploader(s.client)
	if _, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/vnd.apache.parquet"),
	}); err != nil {
		return errors.Wrapf(err, "failed to upload file for bucket %q and key %q", s.bucket, key)
	}
	return nil
}

func (s *S3Store) Download(ctx context.Context, key string) ([]byte, error) {
	downloader := manager.NewDownloader(s.client, func(d *manager.Downloader) {
		d.Concurrency = 16
		d.PartSize = 10 * 1024 * 1024
	})

	buffer := manager.NewWriteAtBuffer([]byte{})
	if _, err := downloader.Download(ctx, buffer, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to download file for bucket %q and key %q", s.bucket, key)
	}
	return buffer.Bytes(), nil
}
