package s3

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/league-portal/internal/domain/media"
	"github.com/riskibarqy/league-portal/internal/infrastructure/objectstore"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
)

type Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	// PublicBaseURL prefixes "<bucket>/<key>" in returned URLs. Defaults to Endpoint.
	PublicBaseURL  string
	MaxObjectBytes int64
	Logger         *logging.Logger
}

// objectAPI is the part of the S3 client the store uses.
type objectAPI interface {
	PutObject(ctx context.Context, in *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *awss3.DeleteObjectInput, optFns ...func(*awss3.Options)) (*awss3.DeleteObjectOutput, error)
}

// Store writes media to an S3-compatible bucket (Cloudflare R2, MinIO, AWS).
type Store struct {
	api        objectAPI
	bucket     string
	publicBase string
	maxBytes   int64
	logger     *logging.Logger
}

func New(ctx context.Context, cfg Config) (*Store, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, crerr.New("s3 bucket is required")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "auto"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID, cfg.SecretAccessKey, "",
		)),
	)
	if err != nil {
		return nil, crerr.Wrap(err, "load s3 config")
	}

	endpoint := strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/")
	client := awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = true
	})

	publicBase := strings.TrimRight(strings.TrimSpace(cfg.PublicBaseURL), "/")
	if publicBase == "" {
		publicBase = endpoint
	}
	return newStore(client, cfg.Bucket, publicBase, cfg.MaxObjectBytes, cfg.Logger), nil
}

func newStore(api objectAPI, bucket, publicBase string, maxBytes int64, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{
		api:        api,
		bucket:     bucket,
		publicBase: publicBase,
		maxBytes:   maxBytes,
		logger:     logger,
	}
}

// Put buffers the body so the SDK can sign a seekable payload, then uploads it.
func (s *Store) Put(ctx context.Context, obj media.Object) (string, error) {
	if obj.Body == nil {
		return "", crerr.New("object body is required")
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	body := obj.Body
	if s.maxBytes > 0 {
		body = io.LimitReader(obj.Body, s.maxBytes+1)
	}
	if _, err := buf.ReadFrom(body); err != nil {
		return "", crerr.Wrapf(err, "read object %s", obj.Key)
	}
	if s.maxBytes > 0 && int64(buf.Len()) > s.maxBytes {
		return "", crerr.Newf("object %s exceeds %d bytes", obj.Key, s.maxBytes)
	}

	_, err := s.api.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(obj.Key),
		Body:          bytes.NewReader(buf.B),
		ContentLength: aws.Int64(int64(buf.Len())),
		ContentType:   aws.String(obj.ContentType),
	})
	if err != nil {
		return "", crerr.Wrapf(err, "put object %s/%s", s.bucket, obj.Key)
	}

	s.logger.DebugContext(ctx, "object stored", "bucket", s.bucket, "object_key", obj.Key, "bytes", buf.Len())
	return objectstore.PublicURL(s.publicBase, s.bucket, obj.Key), nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.api.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return crerr.Wrapf(err, "delete object %s/%s", s.bucket, key)
	}
	return nil
}

func (s *Store) KeyFromURL(publicURL string) (string, bool) {
	return objectstore.KeyFromURL(publicURL, s.bucket)
}
