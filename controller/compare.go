package controller

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/skjjcruz/owner-dashboard-v3/model"
)

var ErrNoSession = errors.New("no league loaded")

func (c *controller) CompareRosters(ctx context.Context, leftRosterID, rightRosterID int) (*model.Comparison, error) {
	session := c.ActiveSession()
	if session == nil {
		return nil, ErrNoSession
	}

	left, found := session.RosterByID[leftRosterID]
	if !found {
		return nil, fmt.Errorf("roster %d is not in the league", leftRosterID)
	}
	right, found := session.RosterByID[rightRosterID]
	if !found {
		return nil, fmt.Errorf("roster %d is not in the league", rightRosterID)
	}

	comparison := &model.Comparison{
		Left:  c.buildTeamSheet(session, left),
		Right: c.buildTeamSheet(session, right),
	}

	// Only groups with at least one member on either side are shown, in the
	// fixed canonical order.
	for _, pos := range model.PositionOrder {
		if len(comparison.Left.Groups[pos]) > 0 || len(comparison.Right.Groups[pos]) > 0 {
			comparison.Positions = append(comparison.Positions, pos)
		}
	}

	return comparison, nil
}

func (c *controller) buildTeamSheet(session *Session, roster *model.Roster) model.TeamSheet {
	groups := groupAndRank(roster.Players, session.Players, session.Stats, session.League.Scoring)

	for _, rows := range groups {
		for i := range rows {
			rows[i].Projection = c.projections.displayPoint(rows[i].PlayerID, session.League.Scoring)
			rows[i].Status = rosterStatus(roster, session.Players[rows[i].PlayerID])
		}
	}

	owner := session.UsersByID[roster.OwnerID]
	return model.TeamSheet{
		RosterID:  roster.RosterID,
		OwnerID:   roster.OwnerID,
		OwnerName: owner.DisplayOrUsername(),
		Groups:    groups,
	}
}

// groupAndRank buckets a roster's players by canonical position and ranks
// each bucket by season fantasy points. Player ids missing from the
// reference table are dropped; the reference data can lag the roster.
func groupAndRank(playerIDs []string, players map[string]*model.Player, stats map[string]model.StatLine, rules model.ScoringRules) map[model.Position][]model.ComparisonRow {
	groups := make(map[model.Position][]model.ComparisonRow)

	for _, id := range playerIDs {
		p, found := players[id]
		if !found {
			continue
		}

		line := stats[id]
		points := computePoints(line, rules)
		games := gamesPlayed(line)

		row := model.ComparisonRow{
			PlayerID:    p.ID,
			Name:        p.FullName(),
			Team:        p.Team,
			Points:      points,
			GamesPlayed: games,
			Average:     averagePoints(points, games),
		}

		pos := model.ParsePosition(string(p.Position))
		groups[pos] = append(groups[pos], row)
	}

	for _, rows := range groups {
		slices.SortFunc(rows, compareRows)
	}

	return groups
}

// compareRows orders by points descending, then games played descending,
// then full name ascending. Total for distinct names, so the sort is
// deterministic regardless of input order.
func compareRows(a, b model.ComparisonRow) int {
	if a.Points != b.Points {
		if a.Points > b.Points {
			return -1
		}
		return 1
	}
	if a.GamesPlayed != b.GamesPlayed {
		return b.GamesPlayed - a.GamesPlayed
	}
	return strings.Compare(a.Name, b.Name)
}

// rosterStatus picks the status flag for a player on a roster. Reserve and
// taxi trump the starter flag, which trumps rookie.
func rosterStatus(roster *model.Roster, p *model.Player) string {
	if p == nil {
		return ""
	}
	if slices.Contains(roster.Reserve, p.ID) {
		return model.StatusIR
	}
	if slices.Contains(roster.Taxi, p.ID) {
		return model.StatusTaxi
	}
	if slices.Contains(roster.Starters, p.ID) {
		return model.StatusStarter
	}
	if p.Rookie() {
		return model.StatusRookie
	}
	return ""
}
