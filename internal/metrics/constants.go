package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Draw metric names
const (
	MetricNameDrawsPerformed  = "draws_performed_total"
	MetricNameEmptyDraws      = "empty_draws_total"
	MetricNameBonusDraws      = "bonus_draws_total"
	MetricNameRarityFallbacks = "rarity_fallbacks_total"
)

// Store metric names
const (
	MetricNameDatasetLoads        = "dataset_loads_total"
	MetricNameDatasetSaves        = "dataset_saves_total"
	MetricNameDatasetSeeds        = "dataset_seeds_total"
	MetricNameReconcileRuns       = "reconcile_runs_total"
	MetricNameCompensationPayouts = "compensation_payouts_total"
	MetricNameCompensationScore   = "compensation_score_total"
	MetricNameQuestRotations      = "quest_rotations_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Draw metric help text
const (
	HelpTextDrawsPerformed  = "Total number of boar draws performed"
	HelpTextEmptyDraws      = "Total number of draws that yielded no eligible boar"
	HelpTextBonusDraws      = "Total number of extra-chance bonus draws granted"
	HelpTextRarityFallbacks = "Total number of rank-0 rarity lookups (configuration drift)"
)

// Store metric help text
const (
	HelpTextDatasetLoads        = "Total number of dataset document loads"
	HelpTextDatasetSaves        = "Total number of dataset document saves"
	HelpTextDatasetSeeds        = "Total number of datasets synthesized from defaults"
	HelpTextReconcileRuns       = "Total number of dataset reconciliations"
	HelpTextCompensationPayouts = "Total number of compensation payouts for retired powerups"
	HelpTextCompensationScore   = "Total score credited by compensation payouts"
	HelpTextQuestRotations      = "Total number of quest rotation regenerations"
)

// Label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelKind   = "kind"
	LabelTier   = "tier"
)

// HTTPLatencyBuckets are the histogram buckets for request latency.
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}
