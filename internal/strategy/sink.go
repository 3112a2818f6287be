package strategy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Sink persists the composed strategy document as a whole-document
// overwrite of pretty-printed JSON.
type Sink interface {
	Write(ctx context.Context, doc map[string]any) error
}

// FileSink writes the strategy to a single local file.
type FileSink struct {
	Path string
}

// Write marshals the document and overwrites the target file.
func (s *FileSink) Write(ctx context.Context, doc map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal strategy: %w", err)
	}
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("prepare strategy dir: %w", err)
		}
	}
	if err := os.WriteFile(s.Path, payload, 0o644); err != nil {
		return fmt.Errorf("write strategy: %w", err)
	}
	return nil
}

// S3Sink writes the strategy to an S3 object.
type S3Sink struct {
	client *s3.Client
	bucket string
	key    string
}

// NewS3Sink constructs an S3-backed sink.
func NewS3Sink(ctx context.Context, region, bucket, prefix, key string) (*S3Sink, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &S3Sink{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		key:    path(prefix, key),
	}, nil
}

// Write uploads the marshaled document.
func (s *S3Sink) Write(ctx context.Context, doc map[string]any) error {
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal strategy: %w", err)
	}
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("s3 put strategy: %w", err)
	}
	return nil
}

func path(prefix, key string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return key
	}
	return prefix + "/" + key
}
