package controller

import (
	"slices"
	"strconv"
	"strings"

	"github.com/skjjcruz/owner-dashboard-v3/model"
)

type pickKey struct {
	year   string
	round  int
	roster int
}

// ownerRefMode is how traded-pick owner references are interpreted for one
// league load: either every reference is a roster id, or every reference is
// a user id. The API does not say which, so the mode is inferred once by
// majority vote across all records.
type ownerRefMode int

const (
	refModeRoster ownerRefMode = iota
	refModeUser
)

// resolvePickOwnership replays a league's traded-pick records over the
// baseline allocation (every pick owned by its roster's owner) and returns
// the final owner of every (year, round, origin roster) pick, keyed by
// owner user id. Records that cannot be attributed leave the pick with its
// baseline owner; a pick shown under its original owner beats one silently
// lost.
func resolvePickOwnership(rosters []model.Roster, usersByID map[string]*model.User, tradedPicks []model.TradedPick, pickYears []string, rounds int) map[string][]model.PickClaim {
	ownerByRoster := make(map[int]string, len(rosters))
	for _, r := range rosters {
		ownerByRoster[r.RosterID] = r.OwnerID
	}

	// Baseline: every roster owns its own allocation for every year and round.
	owners := make(map[pickKey]string)
	for _, r := range rosters {
		for _, year := range pickYears {
			for round := 1; round <= rounds; round++ {
				owners[pickKey{year: year, round: round, roster: r.RosterID}] = r.OwnerID
			}
		}
	}

	mode := voteOwnerRefMode(tradedPicks, ownerByRoster, usersByID)

	// Replay in input order; the last record for a key wins.
	for _, pick := range tradedPicks {
		if !slices.Contains(pickYears, pick.Season) {
			continue
		}
		if pick.Round < 1 || pick.Round > rounds {
			continue
		}

		newOwner, ok := resolveOwnerRef(pick.OwnerRef, mode, ownerByRoster, usersByID)
		if !ok {
			continue
		}

		key := pickKey{year: pick.Season, round: pick.Round, roster: pick.RosterID}
		if _, found := owners[key]; !found {
			// A trade for a roster this league doesn't have.
			continue
		}
		owners[key] = newOwner
	}

	result := make(map[string][]model.PickClaim)
	for key, ownerID := range owners {
		result[ownerID] = append(result[ownerID], model.PickClaim{
			Year:          key.year,
			Round:         key.round,
			OriginRoster:  key.roster,
			OriginOwnerID: ownerByRoster[key.roster],
		})
	}

	for _, claims := range result {
		slices.SortFunc(claims, func(a, b model.PickClaim) int {
			if a.Year != b.Year {
				return strings.Compare(a.Year, b.Year)
			}
			if a.Round != b.Round {
				return a.Round - b.Round
			}
			return a.OriginRoster - b.OriginRoster
		})
	}

	return result
}

// voteOwnerRefMode counts how many owner references look like roster ids
// versus user ids and picks the interpretation with more matches. The vote
// is global: one mode for every record in the load. Leagues where the two
// id spaces overlap can fool this, which is accepted.
func voteOwnerRefMode(tradedPicks []model.TradedPick, ownerByRoster map[int]string, usersByID map[string]*model.User) ownerRefMode {
	var rosterVotes, userVotes int
	for _, pick := range tradedPicks {
		if rosterID, err := strconv.Atoi(pick.OwnerRef); err == nil {
			if _, found := ownerByRoster[rosterID]; found {
				rosterVotes++
			}
		}
		if _, found := usersByID[pick.OwnerRef]; found {
			userVotes++
		}
	}

	if userVotes > rosterVotes {
		return refModeUser
	}
	return refModeRoster
}

// resolveOwnerRef turns a traded-pick owner reference into a user id under
// the chosen mode. False when the reference doesn't resolve to a known user.
func resolveOwnerRef(ref string, mode ownerRefMode, ownerByRoster map[int]string, usersByID map[string]*model.User) (string, bool) {
	if mode == refModeUser {
		if _, found := usersByID[ref]; found {
			return ref, true
		}
		return "", false
	}

	rosterID, err := strconv.Atoi(ref)
	if err != nil {
		return "", false
	}
	ownerID, found := ownerByRoster[rosterID]
	if !found {
		return "", false
	}
	if _, found := usersByID[ownerID]; !found {
		return "", false
	}
	return ownerID, true
}

// assemblePickSummaries builds the per-owner pick lists in roster order for
// display next to the comparison.
func assemblePickSummaries(rosters []model.Roster, usersByID map[string]*model.User, ownership map[string][]model.PickClaim) []model.PickSummary {
	summaries := make([]model.PickSummary, 0, len(ownership))
	seen := make(map[string]bool)

	appendOwner := func(ownerID string) {
		if seen[ownerID] {
			return
		}
		seen[ownerID] = true
		claims := ownership[ownerID]
		if len(claims) == 0 {
			return
		}
		summaries = append(summaries, model.PickSummary{
			OwnerID:   ownerID,
			OwnerName: usersByID[ownerID].DisplayOrUsername(),
			Claims:    claims,
		})
	}

	for _, r := range rosters {
		appendOwner(r.OwnerID)
	}
	// Owners holding picks without a roster in the list still show up.
	remaining := make([]string, 0, len(ownership))
	for ownerID := range ownership {
		if !seen[ownerID] {
			remaining = append(remaining, ownerID)
		}
	}
	slices.Sort(remaining)
	for _, ownerID := range remaining {
		appendOwner(ownerID)
	}

	return summaries
}
