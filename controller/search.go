package controller

import (
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/skjjcruz/owner-dashboard-v3/model"
)

const maxSearchResults = 20

// SearchPlayers fuzzy-matches the query against player full names. An empty
// query, or a call before the player table has loaded, returns no results.
func (c *controller) SearchPlayers(query string) []model.Player {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	c.playersMu.Lock()
	players := c.players
	c.playersMu.Unlock()
	if players == nil {
		return nil
	}

	type match struct {
		player *model.Player
		rank   int
	}

	var matches []match
	for _, p := range players {
		rank := fuzzy.RankMatchNormalizedFold(query, p.FullName())
		if rank < 0 {
			continue
		}
		matches = append(matches, match{player: p, rank: rank})
	}

	slices.SortFunc(matches, func(a, b match) int {
		if a.rank != b.rank {
			return a.rank - b.rank
		}
		return strings.Compare(a.player.FullName(), b.player.FullName())
	})

	if len(matches) > maxSearchResults {
		matches = matches[:maxSearchResults]
	}

	results := make([]model.Player, 0, len(matches))
	for _, m := range matches {
		results = append(results, *m.player)
	}
	return results
}
