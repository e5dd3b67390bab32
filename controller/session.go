package controller

import (
	"context"
	"fmt"
	"log"

	"github.com/skjjcruz/owner-dashboard-v3/db"
	"github.com/skjjcruz/owner-dashboard-v3/model"
)

// Session is everything loaded for one league: the league settings, the
// user/roster indexes, season stats, and resolved pick ownership. A session
// is built fresh on every league load and handed around by reference;
// nothing mutates it afterwards except a background player-table refresh.
type Session struct {
	League      *model.League
	StatsSeason string
	Week        int
	Users       []model.User
	Rosters     []model.Roster
	UsersByID   map[string]*model.User
	RosterByID  map[int]*model.Roster
	Players     map[string]*model.Player
	Stats       map[string]model.StatLine
	Picks       []model.PickSummary
	Status      string
}

// UserForRoster resolves the owner of a roster, or nil when the owner is not
// in the league user list.
func (s *Session) UserForRoster(rosterID int) *model.User {
	r, found := s.RosterByID[rosterID]
	if !found {
		return nil
	}
	return s.UsersByID[r.OwnerID]
}

func (c *controller) GetLeaguesForUser(ctx context.Context, username, season string) (*model.User, []model.League, error) {
	user, err := c.sleeper.GetUser(username)
	if err != nil {
		return nil, nil, fmt.Errorf("error looking up user %s: %w", username, err)
	}

	leagues, err := c.sleeper.GetLeaguesForUser(user.ID, season)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading leagues for %s: %w", username, err)
	}

	// The first successful lookup locks the username for future visits.
	if locked, err := c.LockedUsername(ctx); err != nil {
		log.Printf("error reading locked username: %v", err)
	} else if locked == "" {
		if err := c.LockUsername(ctx, username); err != nil {
			log.Printf("error locking username %s: %v", username, err)
		}
	}

	return user, leagues, nil
}

func (c *controller) LoadLeague(ctx context.Context, leagueID, statsSeason string) (*Session, error) {
	league, err := c.sleeper.GetLeague(leagueID)
	if err != nil {
		return nil, fmt.Errorf("error loading league %s: %w", leagueID, err)
	}

	// A failed state fetch falls back to week 1 rather than failing the load.
	week, err := c.sleeper.GetSportState()
	if err != nil {
		log.Printf("error loading nfl state, defaulting to week 1: %v", err)
		week = 1
	}

	users, err := c.sleeper.GetLeagueUsers(leagueID)
	if err != nil {
		return nil, fmt.Errorf("error loading users for league %s: %w", leagueID, err)
	}

	rosters, err := c.sleeper.GetRosters(leagueID)
	if err != nil {
		return nil, fmt.Errorf("error loading rosters for league %s: %w", leagueID, err)
	}

	players, err := c.loadPlayers()
	if err != nil {
		return nil, err
	}

	status := fmt.Sprintf("Ready - League %s, Stats %s, Week %d", league.Season, statsSeason, week)

	// Stats and traded picks degrade instead of failing the whole load: a
	// comparison without them still renders, just with zeros and baseline
	// pick ownership.
	stats, err := c.sleeper.GetSeasonStats(statsSeason)
	if err != nil {
		log.Printf("error loading season stats for %s: %v", statsSeason, err)
		stats = map[string]model.StatLine{}
		status = fmt.Sprintf("Season stats for %s are unavailable", statsSeason)
	}

	tradedPicks, err := c.sleeper.GetTradedPicks(leagueID)
	if err != nil {
		log.Printf("error loading traded picks for league %s: %v", leagueID, err)
		tradedPicks = nil
	}

	usersByID := make(map[string]*model.User, len(users))
	for i := range users {
		usersByID[users[i].ID] = &users[i]
	}
	rosterByID := make(map[int]*model.Roster, len(rosters))
	for i := range rosters {
		rosterByID[rosters[i].RosterID] = &rosters[i]
	}

	ownership := resolvePickOwnership(rosters, usersByID, tradedPicks, PickYears, league.DraftRounds)

	session := &Session{
		League:      league,
		StatsSeason: statsSeason,
		Week:        week,
		Users:       users,
		Rosters:     rosters,
		UsersByID:   usersByID,
		RosterByID:  rosterByID,
		Players:     players,
		Stats:       stats,
		Picks:       assemblePickSummaries(rosters, usersByID, ownership),
		Status:      status,
	}

	c.mu.Lock()
	c.session = session
	c.mu.Unlock()

	// Scoring rules differ per league, so cached projections are useless
	// across a league switch.
	c.projections.reset(league.Season, week)

	c.saveLastSelection(ctx, leagueID, league.Season, statsSeason)

	return session, nil
}

// saveLastSelection remembers the league and seasons for the next visit.
// Best effort only.
func (c *controller) saveLastSelection(ctx context.Context, leagueID, season, statsSeason string) {
	if err := c.db.SaveSetting(ctx, db.SettingLastLeagueID, leagueID); err != nil {
		log.Printf("error saving last league id: %v", err)
	}
	if err := c.db.SaveSetting(ctx, db.SettingLastSeason, season); err != nil {
		log.Printf("error saving last season: %v", err)
	}
	if err := c.db.SaveSetting(ctx, db.SettingLastStatsYear, statsSeason); err != nil {
		log.Printf("error saving last stats season: %v", err)
	}
}
