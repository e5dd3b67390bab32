package model

// Player status flags shown in the comparison table. Reserve and taxi take
// precedence over starter, which takes precedence over rookie.
const (
	StatusIR      = "IR"
	StatusTaxi    = "TAXI"
	StatusStarter = "START"
	StatusRookie  = "ROOK"
)

// Comparison is a fully computed side-by-side view of two rosters.
// Positions lists, in display order, every canonical group that has at least
// one member on either side; both sheets are keyed by the same groups.
type Comparison struct {
	Left      TeamSheet
	Right     TeamSheet
	Positions []Position
}

type TeamSheet struct {
	RosterID  int
	OwnerID   string
	OwnerName string
	Groups    map[Position][]ComparisonRow
}

// ComparisonRow is one player in a position group, ranked by season fantasy
// points. Projection is pre-formatted because it may be a pending
// placeholder rather than a number.
type ComparisonRow struct {
	PlayerID    string
	Name        string
	Team        string
	Points      float64
	GamesPlayed int
	Average     float64
	Projection  string
	Status      string
}
