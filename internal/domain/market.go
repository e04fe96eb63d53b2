package domain

// Order is one open buy or sell order on the powerup market.
// Num is the total ordered quantity, FilledAmount how much has matched,
// ClaimedAmount how much of the filled quantity the owner has collected.
type Order struct {
	OrderID       string `json:"order_id"`
	UserID        string `json:"user_id"`
	Num           int    `json:"num"`
	FilledAmount  int    `json:"filled_amount"`
	ClaimedAmount int    `json:"claimed_amount"`
	Price         int    `json:"price"`
}

// ItemData holds the open order book for a single powerup.
type ItemData struct {
	Buyers  []*Order `json:"buyers"`
	Sellers []*Order `json:"sellers"`
}

// ItemsData is the powerup market, keyed by powerup ID.
// After reconciliation every configured powerup has an entry and no
// unconfigured key remains.
type ItemsData map[string]*ItemData

// Compensation is the payout owed to one user when a powerup is retired
// from configuration while orders on it are still open.
type Compensation struct {
	UserID string `json:"user_id"`
	ItemID string `json:"item_id"`
	Units  int    `json:"units"` // powerup units credited back
	Score  int    `json:"score"` // score refunded for the unfilled remainder
}
