// Package s3store implements the object-store capability on an S3 bucket.
// A custom endpoint switches the client to path-style addressing, which is
// what S3-compatible stores such as MinIO expect.
package s3store

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"printorders/internal/pkg/errs"
	"printorders/internal/pkg/telemetry"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.opentelemetry.io/otel/attribute"
)

const serviceName = "s3"

// Options carries the connection settings of the bucket.
type Options struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	// Endpoint overrides the AWS endpoint; empty means AWS itself.
	Endpoint string
}

// Store implements ports.ObjectStore.
type Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

// New builds a store from static credentials. optFns tune the underlying
// client, e.g. retry limits in tests.
func New(opts Options, optFns ...func(*s3.Options)) *Store {
	clientOpts := s3.Options{
		Region: opts.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		),
	}
	if opts.Endpoint != "" {
		clientOpts.BaseEndpoint = aws.String(opts.Endpoint)
		clientOpts.UsePathStyle = true
	}

	client := s3.New(clientOpts, optFns...)
	return &Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  opts.Bucket,
	}
}

// PresignPut returns a URL for one PUT of key with the given content type.
func (s *Store) PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (_ string, err error) {
	ctx, span := telemetry.Start(ctx, serviceName, "PresignPut", attribute.String("s3.key", key))
	defer func() { telemetry.End(span, err) }()

	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", errs.NewUpstreamError(serviceName, err)
	}
	return req.URL, nil
}

// PresignGet returns a URL for GETs of key.
func (s *Store) PresignGet(ctx context.Context, key string, ttl time.Duration) (_ string, err error) {
	ctx, span := telemetry.Start(ctx, serviceName, "PresignGet", attribute.String("s3.key", key))
	defer func() { telemetry.End(span, err) }()

	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", errs.NewUpstreamError(serviceName, err)
	}
	return req.URL, nil
}

// List returns every key under prefix, following continuation tokens.
func (s *Store) List(ctx context.Context, prefix string) (_ []string, err error) {
	ctx, span := telemetry.Start(ctx, serviceName, "List", attribute.String("s3.prefix", prefix))
	defer func() { telemetry.End(span, err) }()

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})

	keys := make([]string, 0)
	for paginator.HasMorePages() {
		var page *s3.ListObjectsV2Output
		page, err = paginator.NextPage(ctx)
		if err != nil {
			return nil, errs.NewUpstreamError(serviceName, err)
		}
		for _, obj := range page.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
	}
	return keys, nil
}

// PutJSON stores body under key as application/json.
func (s *Store) PutJSON(ctx context.Context, key string, body []byte) (err error) {
	ctx, span := telemetry.Start(ctx, serviceName, "PutJSON", attribute.String("s3.key", key))
	defer func() { telemetry.End(span, err) }()

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String("application/json"),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return errs.NewUpstreamError(serviceName, err)
	}
	return nil
}

// GetJSON reads key. A missing key is an ObjectNotFoundError.
func (s *Store) GetJSON(ctx context.Context, key string) (_ []byte, err error) {
	ctx, span := telemetry.Start(ctx, serviceName, "GetJSON", attribute.String("s3.key", key))
	defer func() { telemetry.End(span, err) }()

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, errs.NewObjectNotFoundErrorWithCause("key", key, err)
		}
		return nil, errs.NewUpstreamError(serviceName, err)
	}
	defer out.Body.Close()

	var body []byte
	body, err = io.ReadAll(out.Body)
	if err != nil {
		return nil, errs.NewUpstreamError(serviceName, err)
	}
	return body, nil
}
