package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Rotation Metrics
var (
	PeriodsClosed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePeriodsClosed,
			Help: HelpTextPeriodsClosed,
		},
		[]string{LabelPeriodType},
	)

	DuplicateArchives = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDuplicateArchives,
			Help: HelpTextDuplicateArchives,
		},
		[]string{LabelPeriodType},
	)

	TrackingInitialized = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTrackingInitialized,
			Help: HelpTextTrackingInitialized,
		},
	)
)

// Sweep Metrics
var (
	SweepCandidates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSweepCandidates,
			Help: HelpTextSweepCandidates,
		},
	)

	SweepSkips = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSweepSkips,
			Help: HelpTextSweepSkips,
		},
		[]string{LabelReason},
	)

	SweepTickErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSweepTickErrors,
			Help: HelpTextSweepTickErrors,
		},
	)
)

// Upstream Provider Metrics
var (
	UpstreamFetchRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUpstreamFetchRetries,
			Help: HelpTextUpstreamFetchRetries,
		},
	)

	UpstreamFetchFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUpstreamFetchFailures,
			Help: HelpTextUpstreamFetchFailures,
		},
	)
)
