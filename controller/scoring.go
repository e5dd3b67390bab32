package controller

import (
	"math"

	"github.com/skjjcruz/owner-dashboard-v3/model"
)

// computePoints scores a stat line against a league's scoring rules. It is
// total: a nil or empty stat line, nil rules, and stat keys missing from the
// line all contribute zero, and the result is always a finite number.
func computePoints(stats model.StatLine, rules model.ScoringRules) float64 {
	var total float64
	for key, mult := range rules {
		v, found := stats[key]
		if !found {
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || math.IsNaN(mult) || math.IsInf(mult, 0) {
			continue
		}
		total += v * mult
	}
	return total
}

// gamesPlayed reads the games-played count from a stat line, falling back to
// the alternate key sleeper sometimes uses. Never negative.
func gamesPlayed(stats model.StatLine) int {
	gp, found := stats["gp"]
	if !found {
		gp = stats["gms_active"]
	}
	if math.IsNaN(gp) || gp < 0 {
		return 0
	}
	return int(gp)
}

// averagePoints is points per game, with zero games played displaying as a
// zero average rather than a division error.
func averagePoints(points float64, games int) float64 {
	if games <= 0 {
		return 0
	}
	return points / float64(games)
}
