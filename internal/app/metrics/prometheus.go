package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the voice backend
type Metrics struct {
	// HTTP API metrics
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Audio exchange metrics
	UploadsReceived  prometheus.Counter
	UploadBytes      prometheus.Histogram
	ResponsesServed  prometheus.Counter
	ExchangeDuration prometheus.Histogram

	// Vendor call metrics
	LiveSessions      prometheus.Counter
	LiveFallbacks     prometheus.Counter
	VendorCallErrors  prometheus.Counter
	SynthesisFailures prometheus.Counter
}

// New creates and registers all metrics on the given registerer
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cinevoice_http_requests_total",
			Help: "Total number of HTTP requests by method, path and status",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cinevoice_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),

		UploadsReceived: factory.NewCounter(prometheus.CounterOpts{
			Name: "cinevoice_uploads_received_total",
			Help: "Total number of audio uploads accepted",
		}),
		UploadBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "cinevoice_upload_bytes",
			Help:    "Size distribution of uploaded audio",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		}),
		ResponsesServed: factory.NewCounter(prometheus.CounterOpts{
			Name: "cinevoice_responses_served_total",
			Help: "Total number of synthesized responses returned to callers",
		}),
		ExchangeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "cinevoice_exchange_duration_seconds",
			Help:    "End to end duration of one audio exchange",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
		}),

		LiveSessions: factory.NewCounter(prometheus.CounterOpts{
			Name: "cinevoice_live_sessions_total",
			Help: "Total number of live sessions opened against the vendor",
		}),
		LiveFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "cinevoice_live_fallbacks_total",
			Help: "Total number of live session failures that fell back to single shot calls",
		}),
		VendorCallErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "cinevoice_vendor_call_errors_total",
			Help: "Total number of vendor calls that failed after fallback",
		}),
		SynthesisFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "cinevoice_synthesis_failures_total",
			Help: "Total number of responses degraded to text because synthesis failed",
		}),
	}
}
