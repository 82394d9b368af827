// Package publish uploads generated export artifacts to S3-compatible
// object storage and hands back a short-lived download link.
package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}

	now = time.Now
)

const DefaultExpires = 15 * time.Minute

var ErrNoBucket = errors.New("s3 bucket is not configured")

type S3Config struct {
	Bucket   string
	Region   string
	Endpoint string
	User     string
	Password string
	Expires  time.Duration
}

// S3Publisher stores artifacts under exports/<yyyy>/<mm>/<dd>/<uuid>/<name>.
type S3Publisher struct {
	cfg S3Config
}

func NewS3Publisher(cfg S3Config) (*S3Publisher, error) {
	if cfg.Bucket == "" {
		return nil, ErrNoBucket
	}
	if cfg.Expires <= 0 {
		cfg.Expires = DefaultExpires
	}
	return &S3Publisher{cfg: cfg}, nil
}

// ObjectKey builds a unique storage key for a file name.
func ObjectKey(name string) string {
	d := now()
	return fmt.Sprintf("exports/%04d/%02d/%02d/%v/%s", d.Year(), d.Month(), d.Day(), uuid.New(), path.Base(name))
}

func (p *S3Publisher) clients(ctx context.Context) (*s3.Client, *s3.PresignClient, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(p.cfg.Region)}
	if p.cfg.User != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(p.cfg.User, p.cfg.Password, "")))
	}

	cfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if p.cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(p.cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return client, newS3PresignClient(client), nil
}

// Publish uploads body and returns a presigned GET URL for it.
func (p *S3Publisher) Publish(ctx context.Context, name, contentType string, body []byte) (string, error) {
	client, presigner, err := p.clients(ctx)
	if err != nil {
		return "", err
	}

	bucket := p.cfg.Bucket
	key := ObjectKey(name)

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}

	req, err := presignGetObject(presigner, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(p.cfg.Expires))
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}
	return req.URL, nil
}
