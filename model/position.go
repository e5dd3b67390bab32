package model

import (
	"strings"
)

type Position string

const (
	POS_QB    Position = "QB"
	POS_RB    Position = "RB"
	POS_WR    Position = "WR"
	POS_TE    Position = "TE"
	POS_K     Position = "K"
	POS_DEF   Position = "DEF"
	POS_DL    Position = "DL"
	POS_LB    Position = "LB"
	POS_DB    Position = "DB"
	POS_OTHER Position = "OTHER"
)

// PositionOrder is the display order for position groups in a roster
// comparison. Every Position value appears exactly once.
var PositionOrder = []Position{
	POS_QB, POS_RB, POS_WR, POS_TE, POS_K, POS_DEF, POS_DL, POS_LB, POS_DB, POS_OTHER,
}

// ParsePosition maps a raw sleeper position tag into one of the canonical
// groups. It is total: anything unrecognized lands in OTHER, and parsing an
// already-canonical value returns it unchanged.
func ParsePosition(pos string) Position {
	switch strings.ToUpper(strings.TrimSpace(pos)) {
	case "QB":
		return POS_QB
	case "RB", "FB":
		// Fullbacks are rostered in the RB slot.
		return POS_RB
	case "WR":
		return POS_WR
	case "TE":
		return POS_TE
	case "K":
		return POS_K
	case "DEF":
		return POS_DEF
	case "DL", "DE", "DT", "NT":
		return POS_DL
	case "LB", "ILB", "OLB":
		return POS_LB
	case "DB", "CB", "S", "FS", "SS":
		return POS_DB
	default:
		return POS_OTHER
	}
}
