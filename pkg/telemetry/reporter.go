// Package telemetry is the ambient observability surface every log-and-skip
// path in kiln reports through: a pluggable error Reporter (console/Sentry)
// plus a Metrics counter set (spec.md §7's propagation policy — "every
// log-and-skip path also increments a counter and, when a reporter is
// configured, records a breadcrumb/event").
package telemetry

import (
	"sync"
	"time"
)

// Reporter is a pluggable sink for recoverable per-frame error events. If no
// reporter is configured via SetReporter, errors are silently ignored with
// zero overhead beyond a nil check — this is the default, since kiln's core
// never requires a reporter to function (spec.md §7's "log and skip" never
// depends on a configured sink succeeding).
type Reporter interface {
	// ReportError reports a recoverable error the core logged and skipped
	// past (a cascade property application failure, a render subtree
	// skip, a layout failure that emptied the frame).
	ReportError(err error, ctx *ErrorContext)
	// Flush blocks until pending events are sent or timeout elapses.
	Flush(timeout time.Duration) error
}

// ErrorContext carries the stage and node a recoverable error occurred at,
// mirroring the teacher's ErrorContext shape adapted from per-component
// fields (ComponentName/ComponentID/EventName) to kiln's per-frame pipeline
// stages (Stage/NodeID/Property).
type ErrorContext struct {
	// Stage names the pipeline stage the error occurred in; View reports
	// "cascade", "anim-sync", "layout", "interact", "apply-reaction",
	// "collect-elements", and "hot-reload".
	Stage string
	// NodeID is the debug string of the tree.ID the error concerns, if any.
	NodeID string
	// Property is the CSS longhand name involved, for cascade errors.
	Property string

	Timestamp time.Time

	Tags  map[string]string
	Extra map[string]interface{}

	Breadcrumbs []Breadcrumb
}

var (
	mu       sync.RWMutex
	reporter Reporter
)

// SetReporter configures the global reporter. Pass nil to disable
// reporting.
func SetReporter(r Reporter) {
	mu.Lock()
	defer mu.Unlock()
	reporter = r
}

// GetReporter returns the currently configured reporter, or nil.
func GetReporter() Reporter {
	mu.RLock()
	defer mu.RUnlock()
	return reporter
}

// Report sends err to the configured reporter, if any, a no-op otherwise.
func Report(err error, ctx *ErrorContext) {
	if r := GetReporter(); r != nil {
		r.ReportError(err, ctx)
	}
}
