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
	MetricNameEventsPublished = "events_published_total"
)

// Fight metric names
const (
	MetricNameFightsCreated  = "fights_created_total"
	MetricNameFightsFinished = "fights_finished_total"
	MetricNameFightsActive   = "fights_active"
	MetricNameBetsPlaced     = "bets_placed_total"
	MetricNameBetAmount      = "bet_amount_total"
	MetricNameStateUpdates   = "fight_state_updates_total"
	MetricNameFightDuration  = "fight_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextEventsPublished = "Total number of events published"

	HelpTextFightsCreated  = "Total number of fights created"
	HelpTextFightsFinished = "Total number of fights that reached a terminal status"
	HelpTextFightsActive   = "Fights currently open for betting or running"
	HelpTextBetsPlaced     = "Total number of accepted bets"
	HelpTextBetAmount      = "Total amount wagered"
	HelpTextStateUpdates   = "Total number of accepted game state snapshots"
	HelpTextFightDuration  = "Time from fight creation to terminal status in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelSide   = "side"
	LabelWinner = "winner"
)

// LabelValueDraw marks a completed fight without a winner
const LabelValueDraw = "draw"

// LabelValueUnmatched is the path label for requests that matched no route
const LabelValueUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// FightDurationBuckets covers a short betting window up to a long match, in seconds
var FightDurationBuckets = []float64{30, 60, 120, 300, 600, 900, 1800, 3600}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUnexpectedPayload = "Unexpected event payload"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
