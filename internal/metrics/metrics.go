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
)

// Fight Metrics
var (
	FightsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFightsCreated,
			Help: HelpTextFightsCreated,
		},
	)

	FightsFinished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFightsFinished,
			Help: HelpTextFightsFinished,
		},
		[]string{LabelStatus, LabelWinner},
	)

	FightsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameFightsActive,
			Help: HelpTextFightsActive,
		},
	)

	BetsPlaced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBetsPlaced,
			Help: HelpTextBetsPlaced,
		},
		[]string{LabelSide},
	)

	BetAmount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBetAmount,
			Help: HelpTextBetAmount,
		},
		[]string{LabelSide},
	)

	StateUpdates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStateUpdates,
			Help: HelpTextStateUpdates,
		},
	)

	FightDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameFightDuration,
			Help:    HelpTextFightDuration,
			Buckets: FightDurationBuckets,
		},
		[]string{LabelStatus},
	)
)
