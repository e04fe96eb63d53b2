package domain

// BoardEntry is one user's row on a leaderboard metric.
type BoardEntry struct {
	Username string `json:"username"`
	Value    int64  `json:"value"`
}

// BoardData is one leaderboard metric: per-user entries plus a weak
// reference (ID only) to the current top holder. A user whose value for the
// metric is <= 0 must not appear in UserData.
type BoardData struct {
	UserData map[string]*BoardEntry `json:"user_data"`
	TopUser  string                 `json:"top_user,omitempty"`
}

// BoardsData maps metric name to its board.
type BoardsData map[string]*BoardData

// Leaderboard metric names. The configured metric list selects which of
// these exist; reconciliation drops boards for metrics no longer configured.
const (
	MetricScore          = "score"
	MetricTotal          = "total"
	MetricUniques        = "uniques"
	MetricUniquesSpecial = "uniquesSpecial"
	MetricStreak         = "streak"
	MetricAttempts       = "attempts"
	MetricTopAttempts    = "topAttempts"
	MetricGiftsUsed      = "giftsUsed"
	MetricMultiplier     = "multiplier"
	MetricFastest        = "fastest"
)
