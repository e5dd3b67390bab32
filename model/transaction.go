package model

import "time"

// Transaction is an immutable log record of a league move: a waiver claim,
// free-agent pickup, trade, or commissioner action.
type Transaction struct {
	ID        string
	Type      string
	Status    string
	CreatorID string
	OwnerID   string
	Created   time.Time
	Adds      map[string]int // player id -> destination roster id
	Drops     map[string]int
}

// TransactionSummary is the rendered form of a transaction for the activity
// feed.
type TransactionSummary struct {
	Actor   string
	Type    string
	Added   []string
	Dropped []string
	Created time.Time
}
