package controller

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/skjjcruz/owner-dashboard-v3/model"
	"github.com/skjjcruz/owner-dashboard-v3/sleeper"
)

// ProjectionPending is the placeholder shown while a player's projection has
// not been fetched yet.
const ProjectionPending = "pending"

// projectionQuietWindow is how long the cache waits after a projection
// resolves before bumping the version. A burst of resolutions lands as a
// single version change instead of one per player.
const projectionQuietWindow = 250 * time.Millisecond

// projectionCache holds per-player weekly projections for the active league.
// Every player id is in one of three states: absent, in flight, or resolved.
// Asking for an absent player starts exactly one background fetch; asking
// again while it is in flight does nothing. A failed fetch returns the player
// to absent so the next request retries it.
type projectionCache struct {
	clock   clock.Clock
	sleeper sleeper.Client

	mu       sync.Mutex
	season   string
	week     int
	epoch    int64
	resolved map[string]model.StatLine
	inflight map[string]bool

	ver   int64
	dirty bool
	timer *clock.Timer
}

func newProjectionCache(clock clock.Clock, sleeper sleeper.Client) *projectionCache {
	return &projectionCache{
		clock:    clock,
		sleeper:  sleeper,
		resolved: map[string]model.StatLine{},
		inflight: map[string]bool{},
	}
}

// reset drops every cached and in-flight projection and points the cache at a
// new season and week. Fetches still running from before the reset are
// discarded when they land.
func (pc *projectionCache) reset(season string, week int) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	pc.season = season
	pc.week = week
	pc.epoch++
	pc.resolved = map[string]model.StatLine{}
	pc.inflight = map[string]bool{}

	pc.dirty = false
	if pc.timer != nil {
		pc.timer.Stop()
		pc.timer = nil
	}
	pc.ver++
}

func (pc *projectionCache) version() int64 {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.ver
}

// displayPoint returns the projection column for one player: the projected
// fantasy points under the given rules when resolved, or the pending
// placeholder, starting a fetch when the player is absent.
func (pc *projectionCache) displayPoint(playerID string, rules model.ScoringRules) string {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.displayLocked(playerID, rules)
}

// displayPoints is displayPoint over a batch, with the version the values
// belong to. Callers poll the version to learn when pending entries have
// resolved.
func (pc *projectionCache) displayPoints(playerIDs []string, rules model.ScoringRules) (int64, map[string]string) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	values := make(map[string]string, len(playerIDs))
	for _, id := range playerIDs {
		values[id] = pc.displayLocked(id, rules)
	}
	return pc.ver, values
}

func (pc *projectionCache) displayLocked(playerID string, rules model.ScoringRules) string {
	if line, found := pc.resolved[playerID]; found {
		return fmt.Sprintf("%.1f", computePoints(line, rules))
	}

	if !pc.inflight[playerID] && pc.season != "" {
		pc.inflight[playerID] = true
		go pc.fetch(playerID, pc.season, pc.week, pc.epoch)
	}
	return ProjectionPending
}

func (pc *projectionCache) fetch(playerID, season string, week int, epoch int64) {
	line, err := pc.sleeper.GetPlayerProjection(playerID, season, week)

	pc.mu.Lock()
	defer pc.mu.Unlock()

	if epoch != pc.epoch {
		// The league changed while this fetch was out.
		return
	}
	delete(pc.inflight, playerID)

	if err != nil {
		log.Printf("error fetching projection for player %s: %v", playerID, err)
		return
	}

	pc.resolved[playerID] = line
	pc.markDirtyLocked()
}

// markDirtyLocked schedules a single version bump for the quiet window. Only
// one timer runs at a time, so resolutions arriving inside the window ride
// along with the bump already scheduled.
func (pc *projectionCache) markDirtyLocked() {
	pc.dirty = true
	if pc.timer != nil {
		return
	}
	epoch := pc.epoch
	pc.timer = pc.clock.AfterFunc(projectionQuietWindow, func() {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		pc.timer = nil
		if epoch != pc.epoch || !pc.dirty {
			return
		}
		pc.dirty = false
		pc.ver++
	})
}
