package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Rotation metric names
const (
	MetricNamePeriodsClosed       = "periods_closed_total"
	MetricNameDuplicateArchives   = "duplicate_archives_total"
	MetricNameTrackingInitialized = "tracking_initialized_total"
)

// Sweep metric names
const (
	MetricNameSweepCandidates = "sweep_candidates_total"
	MetricNameSweepSkips      = "sweep_skips_total"
	MetricNameSweepTickErrors = "sweep_tick_errors_total"
)

// Upstream provider metric names
const (
	MetricNameUpstreamFetchRetries  = "upstream_fetch_retries_total"
	MetricNameUpstreamFetchFailures = "upstream_fetch_failures_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

const (
	HelpTextPeriodsClosed       = "Total number of rotation periods archived and rebased"
	HelpTextDuplicateArchives   = "Total number of archive attempts skipped because the period was already archived"
	HelpTextTrackingInitialized = "Total number of players initialized for rotational tracking"
)

const (
	HelpTextSweepCandidates = "Total number of due players returned by sweep ticks"
	HelpTextSweepSkips      = "Total number of sweep candidates skipped (allowlist or fetch failure)"
	HelpTextSweepTickErrors = "Total number of sweep ticks that failed"
)

const (
	HelpTextUpstreamFetchRetries  = "Total number of throttled provider requests that were retried"
	HelpTextUpstreamFetchFailures = "Total number of provider fetches that ultimately failed"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelType       = "type"
	LabelPeriodType = "period_type"
	LabelReason     = "reason"
)

// Sweep skip reasons
const (
	SkipReasonNotAllowed  = "not_allowlisted"
	SkipReasonFetchFailed = "fetch_failed"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
