package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/skjjcruz/owner-dashboard-v3/controller"
	"github.com/skjjcruz/owner-dashboard-v3/model"
	"github.com/stretchr/testify/mock"
)

// C is a mock of the controller.C interface for web handler tests.
type C struct {
	mock.Mock
}

func (c *C) LockedUsername(ctx context.Context) (string, error) {
	args := c.Called(ctx)
	return args.String(0), args.Error(1)
}

func (c *C) LockUsername(ctx context.Context, username string) error {
	args := c.Called(ctx, username)
	return args.Error(0)
}

func (c *C) UnlockUsername(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) LastSelection(ctx context.Context) (leagueID, season, statsSeason string) {
	args := c.Called(ctx)
	return args.String(0), args.String(1), args.String(2)
}

func (c *C) GetLeaguesForUser(ctx context.Context, username, season string) (*model.User, []model.League, error) {
	args := c.Called(ctx, username, season)

	var user *model.User
	if args.Get(0) != nil {
		user = args.Get(0).(*model.User)
	}
	var leagues []model.League
	if args.Get(1) != nil {
		leagues = args.Get(1).([]model.League)
	}
	return user, leagues, args.Error(2)
}

func (c *C) LoadLeague(ctx context.Context, leagueID, statsSeason string) (*controller.Session, error) {
	args := c.Called(ctx, leagueID, statsSeason)

	var session *controller.Session
	if args.Get(0) != nil {
		session = args.Get(0).(*controller.Session)
	}
	return session, args.Error(1)
}

func (c *C) ActiveSession() *controller.Session {
	args := c.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*controller.Session)
}

func (c *C) CompareRosters(ctx context.Context, leftRosterID, rightRosterID int) (*model.Comparison, error) {
	args := c.Called(ctx, leftRosterID, rightRosterID)

	var cmp *model.Comparison
	if args.Get(0) != nil {
		cmp = args.Get(0).(*model.Comparison)
	}
	return cmp, args.Error(1)
}

func (c *C) RecentTransactions(ctx context.Context) ([]model.TransactionSummary, error) {
	args := c.Called(ctx)

	var summaries []model.TransactionSummary
	if args.Get(0) != nil {
		summaries = args.Get(0).([]model.TransactionSummary)
	}
	return summaries, args.Error(1)
}

func (c *C) SearchPlayers(query string) []model.Player {
	args := c.Called(query)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Player)
}

func (c *C) ProjectionsFor(playerIDs []string) (int64, map[string]string) {
	args := c.Called(playerIDs)

	var values map[string]string
	if args.Get(1) != nil {
		values = args.Get(1).(map[string]string)
	}
	return args.Get(0).(int64), values
}

func (c *C) ProjectionVersion() int64 {
	args := c.Called()
	return args.Get(0).(int64)
}

func (c *C) RunPeriodicPlayerUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}
