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

// Business Metrics
var (
	EconomyDeltas = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEconomyDeltas,
			Help: HelpTextEconomyDeltas,
		},
		[]string{LabelReason},
	)

	GachaSpins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGachaSpins,
			Help: HelpTextGachaSpins,
		},
		[]string{LabelRarity},
	)

	PityTriggers = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePityTriggers,
			Help: HelpTextPityTriggers,
		},
	)

	PetFeeds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePetFeeds,
			Help: HelpTextPetFeeds,
		},
	)

	PetPlays = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePetPlays,
			Help: HelpTextPetPlays,
		},
	)

	PetLevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePetLevelUps,
			Help: HelpTextPetLevelUps,
		},
	)

	QuestCompletions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuestCompletions,
			Help: HelpTextQuestCompletions,
		},
		[]string{LabelPeriod},
	)

	QuestResets = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuestResets,
			Help: HelpTextQuestResets,
		},
		[]string{LabelPeriod},
	)
)
