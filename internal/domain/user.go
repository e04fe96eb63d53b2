package domain

// User is a user's collection profile. It is owned by the user repository;
// the leaderboard aggregator reads it and the draw flow mutates it.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`

	Score       int64          `json:"score"`
	Boars       map[string]int `json:"boars"` // boar ID -> owned count
	Streak      int            `json:"streak"`
	Attempts    int            `json:"attempts"`
	TopAttempts int            `json:"top_attempts"`
	GiftsUsed   int            `json:"gifts_used"`

	// Multiplier is the base multiplier before boost inflation; BoostStacks
	// counts active temporary boosts applied on top of it.
	Multiplier  int `json:"multiplier"`
	BoostStacks int `json:"boost_stacks"`

	// FastestTime is the best completion time in milliseconds, 0 if unset.
	FastestTime int64 `json:"fastest_time"`

	// Powerups maps powerup ID -> owned count. Compensation payouts from
	// retired market keys credit units here.
	Powerups map[string]int `json:"powerups"`
}

// TotalBoars returns the total number of boars owned across all IDs.
func (u *User) TotalBoars() int64 {
	var total int64
	for _, n := range u.Boars {
		total += int64(n)
	}
	return total
}

// AddBoar records one obtained boar.
func (u *User) AddBoar(boarID string) {
	if u.Boars == nil {
		u.Boars = make(map[string]int)
	}
	u.Boars[boarID]++
}

// AddPowerup credits n units of a powerup.
func (u *User) AddPowerup(powerupID string, n int) {
	if u.Powerups == nil {
		u.Powerups = make(map[string]int)
	}
	u.Powerups[powerupID] += n
}
