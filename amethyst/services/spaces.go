package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ObjectPutter is the part of the S3 client the uploader needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// SpacesService stores custom gifs on DigitalOcean Spaces.
type SpacesService struct {
	client  ObjectPutter
	bucket  string
	baseURL string
}

type SpacesOptions struct {
	Key      string
	Secret   string
	Region   string
	Bucket   string
	Endpoint string
	CDNURL   string
}

func NewSpacesService(ctx context.Context, opts SpacesOptions) (*SpacesService, error) {
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s.digitaloceanspaces.com", opts.Region)
	}
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{URL: endpoint}, nil
	})

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(opts.Key, opts.Secret, "")),
		config.WithRegion(opts.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load spaces config: %w", err)
	}

	baseURL := opts.CDNURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.%s.digitaloceanspaces.com", opts.Bucket, opts.Region)
	}
	return newSpacesService(s3.NewFromConfig(cfg), opts.Bucket, baseURL), nil
}

func newSpacesService(client ObjectPutter, bucket, baseURL string) *SpacesService {
	return &SpacesService{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Upload writes data under key as a public gif and returns its URL.
func (s *SpacesService) Upload(ctx context.Context, key string, data []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String("image/gif"),
		CacheControl: aws.String("public, max-age=31536000"),
		ACL:          types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	slog.Info("Gif uploaded",
		slog.String("type", "sys"),
		slog.String("key", key),
		slog.Int("bytes", len(data)))
	return s.URL(key), nil
}

func (s *SpacesService) URL(key string) string {
	return s.baseURL + "/" + strings.TrimPrefix(key, "/")
}

func (s *SpacesService) GetBucket() string {
	return s.bucket
}
