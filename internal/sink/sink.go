// Package sink delivers export documents to a file, stdout or an S3 bucket.
package sink

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/mindmeal/mindmeal-cli/internal/config"
	"github.com/mindmeal/mindmeal-cli/internal/logger"
)

type Kind string

const (
	KindFile   Kind = "file"
	KindStdout Kind = "stdout"
	KindS3     Kind = "s3"
)

// Target is a parsed output destination.
type Target struct {
	Kind   Kind
	Path   string
	Bucket string
	Key    string
}

func (t Target) String() string {
	switch t.Kind {
	case KindStdout:
		return "stdout"
	case KindS3:
		return "s3://" + t.Bucket + "/" + t.Key
	default:
		return t.Path
	}
}

// ParseTarget accepts "-" for stdout, s3://bucket/key or a file path.
func ParseTarget(raw string) (Target, error) {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return Target{}, fmt.Errorf("output target is required")
	case raw == "-":
		return Target{Kind: KindStdout}, nil
	case strings.HasPrefix(raw, "s3://"):
		bucket, key, _ := strings.Cut(strings.TrimPrefix(raw, "s3://"), "/")
		if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
			return Target{}, fmt.Errorf("s3 target must look like s3://bucket/key, got %q", raw)
		}
		return Target{Kind: KindS3, Bucket: bucket, Key: key}, nil
	default:
		return Target{Kind: KindFile, Path: raw}, nil
	}
}

// ObjectPutter is the slice of the S3 client Writer needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Writer struct {
	Stdout io.Writer
	// S3 is built lazily from ExportConfig when nil.
	S3     ObjectPutter
	Export config.ExportConfig
}

// Write sends body to target.
func (w *Writer) Write(ctx context.Context, target Target, body []byte, contentType string) error {
	switch target.Kind {
	case KindStdout:
		out := w.Stdout
		if out == nil {
			out = os.Stdout
		}
		if _, err := out.Write(body); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
		return nil
	case KindS3:
		client, err := w.s3Client(ctx)
		if err != nil {
			return err
		}
		_, err = client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(target.Bucket),
			Key:         aws.String(target.Key),
			Body:        bytes.NewReader(body),
			ContentType: aws.String(contentType),
		})
		if err != nil {
			return fmt.Errorf("upload %s: %w", target, err)
		}
		logger.Info("export uploaded", "bucket", target.Bucket, "key", target.Key, "bytes", len(body))
		return nil
	default:
		if dir := filepath.Dir(target.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
		}
		if err := os.WriteFile(target.Path, body, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", target.Path, err)
		}
		return nil
	}
}

func (w *Writer) s3Client(ctx context.Context) (ObjectPutter, error) {
	if w.S3 != nil {
		return w.S3, nil
	}
	client, err := NewS3Client(ctx, w.Export)
	if err != nil {
		return nil, err
	}
	w.S3 = client
	return client, nil
}

// NewS3Client loads the default AWS chain, overridden by static keys and a
// custom endpoint when configured.
func NewS3Client(ctx context.Context, cfg config.ExportConfig) (*s3.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.S3Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.S3Region))
	}
	if cfg.S3AccessKey != "" && cfg.S3SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}
