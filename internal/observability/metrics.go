package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "storm_bulletin"

// Metrics holds the Prometheus counters, histograms, and gauges for the bulletin pipeline.
type Metrics struct {
	MessagesConsumed prometheus.Counter
	RecordsProduced  *prometheus.CounterVec // labels: message_type={alert,storm_report}
	Rejections       *prometheus.CounterVec // labels: reason
	Categories       *prometheus.CounterVec // labels: category
	TransformErrors  prometheus.Counter
	PipelineRunning  prometheus.Gauge

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Map rendering metrics.
	MapRenderRequests *prometheus.CounterVec // labels: outcome={success,error}
	MapRenderCache    *prometheus.CounterVec // labels: result={hit,miss}
	MapRenderDuration prometheus.Histogram
	MapRenderEnabled  prometheus.Gauge
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.collectors()...)
	return m
}

// NewMetricsForTesting creates unregistered Metrics so tests can build as many
// as they need.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		MessagesConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_consumed_total",
			Help:      "Total bulletins read from the source topic.",
		}),
		RecordsProduced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_produced_total",
			Help:      "Normalized records written to the sink topic by message type.",
		}, []string{"message_type"}),
		Rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejections_total",
			Help:      "Bulletins that produced no record, by reason.",
		}, []string{"reason"}),
		Categories: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "categories_total",
			Help:      "Bulletins seen by the categorizer, by category.",
		}, []string{"category"}),
		TransformErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transform_errors_total",
			Help:      "Total transformation failures other than rejections.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Number of bulletins per batch extracted from Kafka.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-transform-load cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		MapRenderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "map_render_requests_total",
			Help:      "Static map render requests by outcome.",
		}, []string{"outcome"}),
		MapRenderCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "map_render_cache_total",
			Help:      "Static map cache lookups by result.",
		}, []string{"result"}),
		MapRenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "map_render_duration_seconds",
			Help:      "Mapbox Static Images API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		MapRenderEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "map_render_enabled",
			Help:      "1 when static map rendering is enabled, 0 otherwise.",
		}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.MessagesConsumed,
		m.RecordsProduced,
		m.Rejections,
		m.Categories,
		m.TransformErrors,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.MapRenderRequests,
		m.MapRenderCache,
		m.MapRenderDuration,
		m.MapRenderEnabled,
	}
}
