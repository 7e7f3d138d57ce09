package live

import (
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// Config holds server configuration. The zero value is usable; unset
// fields fall back to the defaults below.
type Config struct {
	// Address is the listen address. Default: ":8420".
	Address string

	// ReadTimeout is the maximum time to wait for a client message.
	// Default: 60 seconds.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum time to wait when sending a message.
	// Default: 10 seconds.
	WriteTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown. Default: 10 seconds.
	ShutdownTimeout time.Duration

	// MaxMessageSize is the maximum incoming WebSocket message size.
	// Default: 64KB.
	MaxMessageSize int64

	// MaxEventQueue is the session event channel buffer. Default: 256.
	MaxEventQueue int

	// CheckOrigin validates the WebSocket upgrade origin. Default:
	// same-origin only.
	CheckOrigin func(r *http.Request) bool

	// Logger receives server and session logs. Default: slog.Default.
	Logger *slog.Logger

	// Tracer traces event dispatches. Default: no tracing.
	Tracer trace.Tracer

	// Metrics records event and session metrics. Default: none.
	Metrics *Metrics

	// PageTitle is the title of the served page shell.
	PageTitle string
}

// Option mutates a Config.
type Option func(*Config)

// WithAddress sets the listen address.
func WithAddress(addr string) Option {
	return func(c *Config) { c.Address = addr }
}

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

// WithTracer enables OpenTelemetry tracing of event dispatches.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Config) { c.Tracer = tracer }
}

// WithMetrics enables Prometheus metrics.
func WithMetrics(m *Metrics) Option {
	return func(c *Config) { c.Metrics = m }
}

// WithCheckOrigin overrides WebSocket origin validation.
func WithCheckOrigin(check func(r *http.Request) bool) Option {
	return func(c *Config) { c.CheckOrigin = check }
}

// WithPageTitle sets the served page title.
func WithPageTitle(title string) Option {
	return func(c *Config) { c.PageTitle = title }
}

// WithTimeouts sets the read and write timeouts.
func WithTimeouts(read, write time.Duration) Option {
	return func(c *Config) {
		c.ReadTimeout = read
		c.WriteTimeout = write
	}
}

func (c *Config) applyDefaults() {
	if c.Address == "" {
		c.Address = ":8420"
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 60 * time.Second
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 10 * time.Second
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	if c.MaxMessageSize == 0 {
		c.MaxMessageSize = 64 * 1024
	}
	if c.MaxEventQueue == 0 {
		c.MaxEventQueue = 256
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.PageTitle == "" {
		c.PageTitle = "lumen"
	}
}
