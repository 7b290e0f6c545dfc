package source

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	DefaultRegion = "us-east-1"
	Stdin         = "-"
	s3Scheme      = "s3"
)

// ObjectGetter is the part of the S3 client used to fetch documents.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type Option func(*Opener)

// WithS3Client sets the client used for s3:// locations.
func WithS3Client(client ObjectGetter) Option {
	return func(o *Opener) {
		o.s3 = client
	}
}

// WithAWSProfile selects the shared config profile used when the S3 client is
// created on first use.
func WithAWSProfile(profile string) Option {
	return func(o *Opener) {
		o.profile = profile
	}
}

func WithAWSRegion(region string) Option {
	return func(o *Opener) {
		if region != "" {
			o.region = region
		}
	}
}

func WithStdin(r io.Reader) Option {
	return func(o *Opener) {
		o.stdin = r
	}
}

// Opener opens invoice and catalog documents from the local filesystem, stdin
// or S3.
type Opener struct {
	mu      sync.Mutex
	s3      ObjectGetter
	profile string
	region  string
	stdin   io.Reader
}

func NewOpener(opts ...Option) *Opener {
	o := &Opener{
		region: DefaultRegion,
		stdin:  os.Stdin,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Open returns a reader for location: a local path, "-" for stdin, or
// s3://bucket/key.
func (o *Opener) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if location == "" {
		return nil, fmt.Errorf("location cannot be empty")
	}
	if location == Stdin {
		return io.NopCloser(o.stdin), nil
	}

	if bucket, key, ok, err := parseS3(location); err != nil {
		return nil, err
	} else if ok {
		return o.openS3(ctx, bucket, key)
	}

	f, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", location, err)
	}
	return f, nil
}

func (o *Opener) openS3(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	client, err := o.client(ctx)
	if err != nil {
		return nil, err
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", bucket, key, err)
	}
	return out.Body, nil
}

func (o *Opener) client(ctx context.Context) (ObjectGetter, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.s3 != nil {
		return o.s3, nil
	}

	opts := []func(*config.LoadOptions) error{config.WithDefaultRegion(o.region)}
	if o.profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(o.profile))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	o.s3 = s3.NewFromConfig(cfg)
	return o.s3, nil
}

// Ext returns the lower-cased extension of location.
func Ext(location string) string {
	return strings.ToLower(path.Ext(location))
}

func parseS3(location string) (bucket, key string, ok bool, err error) {
	if !strings.HasPrefix(location, s3Scheme+"://") {
		return "", "", false, nil
	}

	u, err := url.Parse(location)
	if err != nil {
		return "", "", false, fmt.Errorf("invalid s3 location %s: %w", location, err)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", false, fmt.Errorf("invalid s3 location %s: expected s3://bucket/key", location)
	}
	return u.Host, key, true, nil
}
