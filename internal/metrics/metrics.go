// Package metrics registers the Prometheus collectors for the rendering
// pipeline on the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RenderDuration observes end-to-end render latency per outcome
	// (ok, locale_unsupported, unsafe_content, rendering_failed,
	// compilation_failed, compilation_timeout).
	RenderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "resumegen_render_duration_seconds",
		Help:    "End-to-end resume render duration by outcome.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})

	// CompileTimeouts counts compiler invocations that exceeded the
	// wall-clock budget, including those cancelled by caller disconnect.
	CompileTimeouts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "resumegen_compile_timeouts_total",
		Help: "Total compiler invocations terminated for exceeding the deadline.",
	})

	// DescriptorsSkipped counts template descriptors dropped during store
	// discovery because they could not be read or parsed.
	DescriptorsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "resumegen_template_descriptors_skipped_total",
		Help: "Total template descriptors skipped during store discovery.",
	})
)
