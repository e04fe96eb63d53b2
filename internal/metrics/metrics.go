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

// Draw Metrics
var (
	DrawsPerformed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDrawsPerformed,
			Help: HelpTextDrawsPerformed,
		},
		[]string{LabelTier},
	)

	EmptyDraws = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEmptyDraws,
			Help: HelpTextEmptyDraws,
		},
	)

	BonusDraws = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBonusDraws,
			Help: HelpTextBonusDraws,
		},
	)

	RarityFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRarityFallbacks,
			Help: HelpTextRarityFallbacks,
		},
	)
)

// Store Metrics
var (
	DatasetLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDatasetLoads,
			Help: HelpTextDatasetLoads,
		},
		[]string{LabelKind},
	)

	DatasetSaves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDatasetSaves,
			Help: HelpTextDatasetSaves,
		},
		[]string{LabelKind},
	)

	DatasetSeeds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDatasetSeeds,
			Help: HelpTextDatasetSeeds,
		},
		[]string{LabelKind},
	)

	ReconcileRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReconcileRuns,
			Help: HelpTextReconcileRuns,
		},
		[]string{LabelKind},
	)

	CompensationPayouts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCompensationPayouts,
			Help: HelpTextCompensationPayouts,
		},
	)

	CompensationScore = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCompensationScore,
			Help: HelpTextCompensationScore,
		},
	)

	QuestRotations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQuestRotations,
			Help: HelpTextQuestRotations,
		},
	)
)
