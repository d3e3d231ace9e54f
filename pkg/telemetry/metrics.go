package telemetry

import "sync"

// Metrics is the counter set every log-and-skip path in kiln increments
// (spec.md §7). The default, set by NewNoopMetrics, discards everything at
// zero cost; NewPrometheusMetrics wires the same calls into real counters.
type Metrics interface {
	// CascadeError counts a per-property cascade application failure,
	// partitioned by its CascadeError kind (e.g. "InvalidKeyword").
	CascadeError(kind string)
	// RenderError counts a template render/bind failure.
	RenderError(kind string)
	// LayoutFailure counts an update that returned an empty frame because
	// the layout engine failed.
	LayoutFailure()
	// SubtreeSkipped counts a tree-traversal error that caused a subtree
	// to be skipped rather than the whole update failing.
	SubtreeSkipped()
}

type noopMetrics struct{}

func (noopMetrics) CascadeError(string) {}
func (noopMetrics) RenderError(string)  {}
func (noopMetrics) LayoutFailure()      {}
func (noopMetrics) SubtreeSkipped()     {}

// NewNoopMetrics returns a Metrics that discards every call.
func NewNoopMetrics() Metrics { return noopMetrics{} }

var (
	metricsMu sync.RWMutex
	metrics   Metrics = noopMetrics{}
)

// SetMetrics configures the global Metrics sink. Passing nil restores the
// no-op default.
func SetMetrics(m Metrics) {
	metricsMu.Lock()
	defer metricsMu.Unlock()
	if m == nil {
		m = noopMetrics{}
	}
	metrics = m
}

// GetMetrics returns the currently configured Metrics sink, never nil.
func GetMetrics() Metrics {
	metricsMu.RLock()
	defer metricsMu.RUnlock()
	return metrics
}
