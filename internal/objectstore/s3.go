// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/tracing"
)

type Object struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

type Config struct {
	Bucket string
	Region string
	// Endpoint points at S3 compatible storage such as MinIO.
	Endpoint string
}

// S3Store keeps payment proofs and gallery images in a single bucket.
type S3Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *S3Store) Put(ctx context.Context, key string, data []byte, contentType string) error {
	ctx, span := s.tracer.Start(ctx, "objectstore.S3Store.Put")
	defer span.End()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	})
	s.reportAvailability(err)
	if err != nil {
		return fmt.Errorf("s3 put failed for %s: %w", key, err)
	}

	return nil
}

// List returns every object under prefix.
func (s *S3Store) List(ctx context.Context, prefix string) ([]Object, error) {
	ctx, span := s.tracer.Start(ctx, "objectstore.S3Store.List")
	defer span.End()

	objects := make([]Object, 0)

	p := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		s.reportAvailability(err)
		if err != nil {
			return nil, fmt.Errorf("s3 list failed for %s: %w", prefix, err)
		}

		for _, o := range page.Contents {
			obj := Object{Key: aws.ToString(o.Key), Size: aws.ToInt64(o.Size)}
			if o.LastModified != nil {
				obj.LastModified = *o.LastModified
			}
			objects = append(objects, obj)
		}
	}

	return objects, nil
}

// PresignGet returns a time limited download URL, no request is sent.
func (s *S3Store) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	ctx, span := s.tracer.Start(ctx, "objectstore.S3Store.PresignGet")
	defer span.End()

	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("s3 presign failed for %s: %w", key, err)
	}

	return req.URL, nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	ctx, span := s.tracer.Start(ctx, "objectstore.S3Store.Delete")
	defer span.End()

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	s.reportAvailability(err)
	if err != nil {
		return fmt.Errorf("s3 delete failed for %s: %w", key, err)
	}

	return nil
}

func (s *S3Store) reportAvailability(err error) {
	available := 1.0
	if err != nil {
		available = 0
	}

	if merr := s.monitor.SetDependencyAvailability(map[string]string{"component": "s3"}, available); merr != nil {
		s.logger.Debugf("failed to record s3 availability: %v", merr)
	}
}

// NewS3Store loads credentials from the default AWS chain.
func NewS3Store(ctx context.Context, cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*S3Store, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewS3StoreFromConfig(awsCfg, cfg, tracer, monitor, logger), nil
}

func NewS3StoreFromConfig(awsCfg aws.Config, cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *S3Store {
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	s := new(S3Store)
	s.client = client
	s.presign = s3.NewPresignClient(client)
	s.bucket = cfg.Bucket

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
