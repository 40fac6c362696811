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

// Crafting Metrics
var (
	CraftAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCraftAttempts,
			Help: HelpTextCraftAttempts,
		},
		[]string{LabelRecipe, LabelOutcome},
	)

	CraftQuality = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameCraftQuality,
			Help:    HelpTextCraftQuality,
			Buckets: CraftQualityBuckets,
		},
		[]string{LabelRecipe},
	)

	RecipesDiscovered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecipesDiscovered,
			Help: HelpTextRecipesDiscovered,
		},
		[]string{LabelRecipe},
	)

	RecipesLearned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecipesLearned,
			Help: HelpTextRecipesLearned,
		},
		[]string{LabelRecipe},
	)

	MasteryAdvances = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMasteryAdvances,
			Help: HelpTextMasteryAdvances,
		},
	)
)
