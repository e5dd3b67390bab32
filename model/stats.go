package model

// StatLine maps a sleeper stat key, like "pass_yd" or "rec_td", to its value
// for one player over a season or a single week. A stat line is never
// mutated after it is built; stale data is replaced wholesale.
type StatLine map[string]float64

// ScoringRules maps a stat key to the points awarded per unit of that stat.
// Non-numeric entries in the league settings are filtered out before a
// ScoringRules value is built, so every multiplier here is usable as-is.
type ScoringRules map[string]float64
