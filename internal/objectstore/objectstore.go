package objectstore

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	appconfig "github.com/soundshelf/soundshelf/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("objectstore",
	fx.Provide(NewClient),
	fx.Provide(New),
	fx.Invoke(registerLifecycle),
)

// NewClient builds an S3 client for an S3-compatible space.
func NewClient(cfg appconfig.Config) (*s3.Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.SpaceRegion),
	}
	if cfg.SpaceAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.SpaceAccessKey, cfg.SpaceSecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), loadOpts...)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.SpaceEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.SpaceEndpoint)
		}
		o.UsePathStyle = cfg.SpaceEndpoint != ""
	}), nil
}

// PutInput describes one blob upload.
type PutInput struct {
	Key           string
	Body          io.Reader
	ContentType   string
	ContentLength int64
	OriginalName  string
	UploadedAt    time.Time
}

// Store uploads song blobs to a public bucket.
type Store struct {
	client  *s3.Client
	bucket  string
	timeout time.Duration
	log     *zap.Logger
}

func New(client *s3.Client, cfg appconfig.Config, log *zap.Logger) *Store {
	return &Store{
		client:  client,
		bucket:  cfg.SpaceBucket,
		timeout: time.Duration(cfg.SpaceTimeoutSec) * time.Second,
		log:     log.Named("objectstore"),
	}
}

// Put writes the blob public-read with its original name and upload
// time recorded as object metadata.
func (s *Store) Put(ctx context.Context, in PutInput) error {
	putCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.client.PutObject(putCtx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(in.Key),
		Body:          in.Body,
		ACL:           types.ObjectCannedACLPublicRead,
		ContentType:   aws.String(in.ContentType),
		ContentLength: aws.Int64(in.ContentLength),
		Metadata: map[string]string{
			"original-name": in.OriginalName,
			"update":        strconv.FormatInt(in.UploadedAt.UnixMilli(), 10),
		},
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", in.Key, err)
	}

	s.log.Info("blob stored", zap.String("key", in.Key), zap.Int64("bytes", in.ContentLength))
	return nil
}

// Ping verifies the bucket is reachable.
func (s *Store) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.client.HeadBucket(pingCtx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	})
	return err
}

func registerLifecycle(lc fx.Lifecycle, store *Store) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return store.Ping(ctx)
		},
	})
}
