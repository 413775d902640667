package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// S3Client is the subset of the S3 API the provider uses
type S3Client interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, input *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	HeadObject(ctx context.Context, input *s3.HeadObjectInput, opts ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

type S3Options struct {
	Bucket    string
	Region    string
	Endpoint  string
	PublicURL string
	AccessKey string
	SecretKey string
}

// S3Provider stores every logical bucket as a prefix inside one S3 bucket
type S3Provider struct {
	client    S3Client
	bucket    string
	publicURL string
}

// NewS3Provider builds a client from the default AWS credential chain, or from
// static keys when given. A custom endpoint enables S3-compatible services.
func NewS3Provider(ctx context.Context, opts S3Options) (*S3Provider, error) {
	if opts.Bucket == "" {
		return nil, errors.New("s3 bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(opts.Region)}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewS3ProviderWithClient(client, opts), nil
}

func NewS3ProviderWithClient(client S3Client, opts S3Options) *S3Provider {
	publicURL := opts.PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", opts.Bucket, opts.Region)
	}
	return &S3Provider{client: client, bucket: opts.Bucket, publicURL: publicURL}
}

func (p *S3Provider) Name() string { return "s3" }

func (p *S3Provider) objectKey(bucket, key string) string {
	return bucket + "/" + key
}

func (p *S3Provider) Upload(ctx context.Context, obj Object) (string, error) {
	if !ValidKey(obj.Key) || !ValidBucket(obj.Bucket) {
		return "", ErrInvalidKey
	}

	key := p.objectKey(obj.Bucket, obj.Key)

	_, err := p.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return "", ErrAlreadyExists
	}
	if !isS3NotFound(err) {
		return "", err
	}

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          obj.Body,
		ContentType:   aws.String(obj.ContentType),
		ContentLength: aws.Int64(obj.Size),
		CacheControl:  aws.String("public, max-age=3600"),
	})
	if err != nil {
		return "", err
	}

	return joinURL(p.publicURL, obj.Bucket, obj.Key), nil
}

func (p *S3Provider) Delete(ctx context.Context, bucket, key string) error {
	if !ValidKey(key) || !ValidBucket(bucket) {
		return ErrInvalidKey
	}

	_, err := p.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(p.objectKey(bucket, key)),
	})
	if isS3NotFound(err) {
		return ErrNotFound
	}
	return err
}

func (p *S3Provider) KeyFromURL(bucket, publicURL string) (string, bool) {
	return splitURL(p.publicURL, bucket, publicURL)
}

func isS3NotFound(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey":
			return true
		}
	}
	return false
}
