package controller

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/skjjcruz/owner-dashboard-v3/db"
	"github.com/skjjcruz/owner-dashboard-v3/model"
	"github.com/skjjcruz/owner-dashboard-v3/sleeper"
)

// Seasons offered in the dashboard dropdowns and the future draft years the
// pick resolver covers.
var (
	LeagueSeasons = []string{"2023", "2024", "2025", "2026"}
	StatsSeasons  = []string{"2023", "2024", "2025"}
	PickYears     = []string{"2026", "2027", "2028"}
)

const (
	DefaultLeagueSeason = "2026"
	DefaultStatsSeason  = "2025"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// LockedUsername returns the username the dashboard is locked to, or ""
	// when no username has been locked yet.
	LockedUsername(ctx context.Context) (string, error)
	LockUsername(ctx context.Context, username string) error
	UnlockUsername(ctx context.Context) error

	// LastSelection returns the league id and seasons saved by the previous
	// successful league load, or empty strings.
	LastSelection(ctx context.Context) (leagueID, season, statsSeason string)

	// GetLeaguesForUser resolves a sleeper username and lists that user's
	// leagues for the season. The first successful lookup locks the
	// username.
	GetLeaguesForUser(ctx context.Context, username, season string) (*model.User, []model.League, error)

	// LoadLeague builds a fresh session for the league: settings, users,
	// rosters, season stats, and resolved draft-pick ownership. It replaces
	// any previous session and discards all cached projections.
	LoadLeague(ctx context.Context, leagueID, statsSeason string) (*Session, error)
	ActiveSession() *Session

	// CompareRosters computes the side-by-side view of two rosters in the
	// active session, grouped by canonical position and ranked by season
	// fantasy points.
	CompareRosters(ctx context.Context, leftRosterID, rightRosterID int) (*model.Comparison, error)

	// RecentTransactions fetches and summarizes the current week's league
	// activity, newest first.
	RecentTransactions(ctx context.Context) ([]model.TransactionSummary, error)

	SearchPlayers(query string) []model.Player

	// ProjectionsFor returns the current projection column for the given
	// players along with the projection version the values belong to.
	// Unresolved players come back as the pending placeholder and have a
	// fetch started as a side effect.
	ProjectionsFor(playerIDs []string) (int64, map[string]string)
	ProjectionVersion() int64

	RunPeriodicPlayerUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

type controller struct {
	clock   clock.Clock
	sleeper sleeper.Client
	db      db.DB

	mu      sync.RWMutex
	session *Session

	playersMu sync.Mutex
	players   map[string]*model.Player

	projections *projectionCache
}

func New(clock clock.Clock, sleeper sleeper.Client, db db.DB) (C, error) {
	c := &controller{
		clock:   clock,
		sleeper: sleeper,
		db:      db,
	}
	c.projections = newProjectionCache(clock, sleeper)
	return c, nil
}

func (c *controller) ActiveSession() *Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

func (c *controller) ProjectionVersion() int64 {
	return c.projections.version()
}

func (c *controller) ProjectionsFor(playerIDs []string) (int64, map[string]string) {
	session := c.ActiveSession()
	if session == nil {
		return 0, map[string]string{}
	}
	return c.projections.displayPoints(playerIDs, session.League.Scoring)
}

// loadPlayers returns the shared player table, fetching it on first use. The
// table is reference data: loaded once, then read-only.
func (c *controller) loadPlayers() (map[string]*model.Player, error) {
	c.playersMu.Lock()
	defer c.playersMu.Unlock()

	if c.players != nil {
		return c.players, nil
	}

	start := time.Now()
	players, err := c.sleeper.LoadPlayers()
	if err != nil {
		return nil, fmt.Errorf("error loading players: %w", err)
	}

	byID := make(map[string]*model.Player, len(players))
	for i := range players {
		byID[players[i].ID] = &players[i]
	}
	c.players = byID

	log.Printf("load players finished, took %v", time.Since(start))
	return c.players, nil
}

// refreshPlayers replaces the shared player table with a fresh copy.
func (c *controller) refreshPlayers() error {
	players, err := c.sleeper.LoadPlayers()
	if err != nil {
		return fmt.Errorf("error refreshing players: %w", err)
	}

	byID := make(map[string]*model.Player, len(players))
	for i := range players {
		byID[players[i].ID] = &players[i]
	}

	c.playersMu.Lock()
	c.players = byID
	c.playersMu.Unlock()

	c.mu.Lock()
	if c.session != nil {
		c.session.Players = byID
	}
	c.mu.Unlock()

	return nil
}

func (c *controller) RunPeriodicPlayerUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			if err := c.refreshPlayers(); err != nil {
				log.Printf("%v", err)
			}
		}
	}
}
