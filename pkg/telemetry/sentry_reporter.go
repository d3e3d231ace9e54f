package telemetry

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// SentryReporter sends reported errors to Sentry with the stage/node
// context and breadcrumb trail attached. An empty DSN disables sending,
// useful for tests.
type SentryReporter struct {
	hub *sentry.Hub
}

// SentryOption configures sentry.ClientOptions during NewSentryReporter.
type SentryOption func(*sentry.ClientOptions)

// WithEnvironment sets the environment tag for all events.
func WithEnvironment(env string) SentryOption {
	return func(o *sentry.ClientOptions) { o.Environment = env }
}

// WithRelease sets the release identifier for all events.
func WithRelease(release string) SentryOption {
	return func(o *sentry.ClientOptions) { o.Release = release }
}

// NewSentryReporter initializes the Sentry SDK with dsn and returns a
// reporter backed by the current hub.
func NewSentryReporter(dsn string, opts ...SentryOption) (*SentryReporter, error) {
	clientOpts := sentry.ClientOptions{Dsn: dsn}
	for _, opt := range opts {
		opt(&clientOpts)
	}
	if err := sentry.Init(clientOpts); err != nil {
		return nil, fmt.Errorf("telemetry: sentry init: %w", err)
	}
	return &SentryReporter{hub: sentry.CurrentHub()}, nil
}

func (r *SentryReporter) ReportError(err error, ctx *ErrorContext) {
	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("stage", ctx.Stage)
		if ctx.NodeID != "" {
			scope.SetTag("node_id", ctx.NodeID)
		}
		if ctx.Property != "" {
			scope.SetTag("property", ctx.Property)
		}
		for k, v := range ctx.Tags {
			scope.SetTag(k, v)
		}
		for k, v := range ctx.Extra {
			scope.SetExtra(k, v)
		}
		for _, bc := range ctx.Breadcrumbs {
			scope.AddBreadcrumb(&sentry.Breadcrumb{
				Category:  bc.Category,
				Message:   bc.Message,
				Level:     sentry.Level(bc.Level),
				Timestamp: bc.Timestamp,
				Data:      bc.Data,
			}, MaxBreadcrumbs)
		}
		r.hub.CaptureException(err)
	})
}

func (r *SentryReporter) Flush(timeout time.Duration) error {
	sentry.Flush(timeout)
	return nil
}
