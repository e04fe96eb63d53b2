package domain

// GuildData is the per-guild JSON document. One document exists per guild ID;
// it is created on first interaction when requested and removed automatically
// only while setup is incomplete.
type GuildData struct {
	GuildID    string   `json:"guild_id"`
	FullySetup bool     `json:"fully_setup"`
	IsSBServer bool     `json:"is_sb_server"`
	ChannelIDs []string `json:"channel_ids,omitempty"`
}

// Context returns the eligibility view of this guild.
func (g *GuildData) Context() GuildContext {
	return GuildContext{GuildID: g.GuildID, IsSBServer: g.IsSBServer}
}

// Clone returns an independent copy. The guild store hands out and caches
// copies only, so a mutation on one caller's document never leaks into
// another's.
func (g *GuildData) Clone() *GuildData {
	c := *g
	c.ChannelIDs = append([]string(nil), g.ChannelIDs...)
	return &c
}

// GitHubData is the optional cached release metadata. It is only created when
// the external dependency channel is reachable.
type GitHubData struct {
	LastVersion  string `json:"last_version"`
	ChangelogURL string `json:"changelog_url,omitempty"`
	CheckedAt    int64  `json:"checked_at"`
}

// BannedUsers is the global banned-user list, keyed by user ID. The value is
// an optional reason string.
type BannedUsers map[string]string
