// Package publish uploads rendered component snapshots to S3. Snapshots
// are static HTML renders of a component, useful for visual review and
// for hosting non-interactive previews.
package publish

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/lumen-ui/lumen/pkg/live"
	"github.com/lumen-ui/lumen/pkg/vdom"
)

// ObjectPutter is the slice of the S3 client the publisher needs.
// *s3.Client satisfies it; tests substitute a recorder.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher writes snapshots into one bucket under a key prefix.
type Publisher struct {
	client ObjectPutter
	bucket string
	prefix string
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithPrefix sets the key prefix for all snapshots (e.g. "snapshots/").
func WithPrefix(prefix string) Option {
	return func(p *Publisher) { p.prefix = prefix }
}

// WithLogger sets the publisher's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) { p.logger = logger }
}

// New creates a Publisher targeting the given bucket.
func New(client ObjectPutter, bucket string, opts ...Option) *Publisher {
	p := &Publisher{
		client: client,
		bucket: bucket,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish renders the component and uploads it as <prefix><name>.html.
// It returns the object key.
func (p *Publisher) Publish(ctx context.Context, name string, c vdom.Component) (string, error) {
	html, err := live.RenderComponent(c)
	if err != nil {
		return "", fmt.Errorf("publish: render %q: %w", name, err)
	}
	return p.PublishHTML(ctx, name, html)
}

// PublishHTML uploads already-rendered HTML under <prefix><name>.html.
func (p *Publisher) PublishHTML(ctx context.Context, name, html string) (string, error) {
	key := p.prefix + name + ".html"

	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader([]byte(html)),
		ContentType: aws.String("text/html; charset=utf-8"),
		Metadata: map[string]string{
			"published-time": p.now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", fmt.Errorf("publish: upload %q: %w", key, err)
	}

	p.logger.Info("snapshot published", "bucket", p.bucket, "key", key, "bytes", len(html))
	return key, nil
}
