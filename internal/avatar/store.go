// AngelaMos | 2026
// store.go

package avatar

import (
	"context"
	"fmt"
	"mime"
	"os"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/carterperez-dev/templates/contacts-api/internal/config"
)

// Store takes ownership of a processed image file and returns the URL it
// is reachable at.
type Store interface {
	Put(ctx context.Context, name, localPath string) (string, error)
}

func NewStore(ctx context.Context, cfg config.AvatarConfig) (Store, error) {
	switch cfg.Driver {
	case config.AvatarDriverS3:
		return NewS3Store(ctx, cfg.S3)
	case config.AvatarDriverLocal, "":
		return NewLocalStore(cfg.PublicDir, cfg.URLPrefix)
	default:
		return nil, fmt.Errorf("unknown avatar driver %q", cfg.Driver)
	}
}

type LocalStore struct {
	dir       string
	urlPrefix string
}

func NewLocalStore(dir, urlPrefix string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create avatar dir: %w", err)
	}
	return &LocalStore{dir: dir, urlPrefix: urlPrefix}, nil
}

func (s *LocalStore) Put(_ context.Context, name, localPath string) (string, error) {
	dst := filepath.Join(s.dir, name)
	if err := os.Rename(localPath, dst); err != nil {
		return "", fmt.Errorf("move avatar: %w", err)
	}
	return path.Join(s.urlPrefix, url.PathEscape(name)), nil
}

type s3PutAPI interface {
	PutObject(
		ctx context.Context,
		params *s3.PutObjectInput,
		optFns ...func(*s3.Options),
	) (*s3.PutObjectOutput, error)
}

type S3Store struct {
	client    s3PutAPI
	bucket    string
	publicURL string
}

func NewS3Store(ctx context.Context, cfg config.S3Config) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				"",
			),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: publicBaseURL(cfg),
	}, nil
}

func (s *S3Store) Put(ctx context.Context, name, localPath string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("open avatar: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only handle

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
		Body:   f,
	}
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		input.ContentType = aws.String(ct)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("upload avatar: %w", err)
	}

	if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("remove staged avatar: %w", err)
	}

	return s.publicURL + "/" + url.PathEscape(name), nil
}

func publicBaseURL(cfg config.S3Config) string {
	if cfg.PublicURL != "" {
		return strings.TrimRight(cfg.PublicURL, "/")
	}
	if cfg.Endpoint != "" {
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}
