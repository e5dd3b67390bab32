package model

// TradedPick is a single transfer of a future draft selection. OwnerRef is
// kept as the raw string from the API because sleeper does not say whether it
// names a roster id or a user id; the resolver decides that per league load.
type TradedPick struct {
	Season   string
	Round    int
	RosterID int // the roster whose original allocation this pick is
	OwnerRef string
}

// PickClaim is one future pick currently owned by a user, recording which
// roster's allocation it originally was for "via <owner>" display.
type PickClaim struct {
	Year          string
	Round         int
	OriginRoster  int
	OriginOwnerID string
}

// PickSummary is the per-owner view of resolved pick ownership.
type PickSummary struct {
	OwnerID   string
	OwnerName string
	Claims    []PickClaim
}
