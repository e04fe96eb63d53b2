package domain

// Boar represents one drawable collectible as configured.
// Boars are identified by a stable string ID unique across all rarity tiers.
type Boar struct {
	ID          string `json:"id"`
	Blacklisted bool   `json:"blacklisted"` // never drawable, excluded from every pool
	IsSB        bool   `json:"is_sb"`       // restricted to guilds flagged as SB servers
}

// RarityTier groups boars sharing a draw weight.
// Rank is 1-based in descending weight order; rank 0 is reserved for the
// "unknown" fallback and must never be produced by a normal draw.
type RarityTier struct {
	Name      string   `json:"name"`
	Rank      int      `json:"rank"`
	Weight    float64  `json:"weight"`
	FromDaily bool     `json:"from_daily"` // eligible for the base draw pool
	BoarIDs   []string `json:"boar_ids"`
}

// GuildContext is the read-only per-guild view used for draw eligibility.
type GuildContext struct {
	GuildID    string `json:"guild_id"`
	IsSBServer bool   `json:"is_sb_server"`
}

// BoarInfo is the global catalogue record for a single boar.
type BoarInfo struct {
	CurEdition    int    `json:"cur_edition"`
	NumExists     int    `json:"num_exists"`
	FirstObtained string `json:"first_obtained,omitempty"` // user ID of the first owner
}

// BoarsData is the global boar catalogue, keyed by boar ID.
type BoarsData map[string]*BoarInfo
