package telemetry

import "github.com/prometheus/client_golang/prometheus"

// PrometheusMetrics implements Metrics using Prometheus counters, exposed
// for scraping by a Prometheus server. All metrics are prefixed "kiln_" to
// avoid naming collisions with a host application's own metrics.
type PrometheusMetrics struct {
	cascadeErrors   *prometheus.CounterVec
	renderErrors    *prometheus.CounterVec
	layoutFailures  prometheus.Counter
	subtreesSkipped prometheus.Counter
}

// NewPrometheusMetrics creates and registers kiln's counters against reg.
// Registration failure (e.g. a duplicate) panics, matching the teacher's
// fail-fast-at-startup convention for metrics setup.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	cascadeErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kiln_cascade_errors_total",
		Help: "Total number of per-property cascade application errors, partitioned by CascadeError kind.",
	}, []string{"kind"})

	renderErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kiln_render_errors_total",
		Help: "Total number of template render/bind errors, partitioned by kind.",
	}, []string{"kind"})

	layoutFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kiln_layout_failures_total",
		Help: "Total number of updates that returned an empty frame due to a layout engine failure.",
	})

	subtreesSkipped := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kiln_subtrees_skipped_total",
		Help: "Total number of tree-traversal errors that caused a subtree to be skipped.",
	})

	reg.MustRegister(cascadeErrors, renderErrors, layoutFailures, subtreesSkipped)

	return &PrometheusMetrics{
		cascadeErrors:   cascadeErrors,
		renderErrors:    renderErrors,
		layoutFailures:  layoutFailures,
		subtreesSkipped: subtreesSkipped,
	}
}

func (pm *PrometheusMetrics) CascadeError(kind string) { pm.cascadeErrors.WithLabelValues(kind).Inc() }
func (pm *PrometheusMetrics) RenderError(kind string)  { pm.renderErrors.WithLabelValues(kind).Inc() }
func (pm *PrometheusMetrics) LayoutFailure()           { pm.layoutFailures.Inc() }
func (pm *PrometheusMetrics) SubtreeSkipped()          { pm.subtreesSkipped.Inc() }
