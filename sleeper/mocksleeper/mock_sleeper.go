package mocksleeper

import (
	"github.com/skjjcruz/owner-dashboard-v3/model"
	"github.com/stretchr/testify/mock"
)

// Client is a mock of the sleeper.Client interface for controller tests.
type Client struct {
	mock.Mock
}

func (c *Client) GetSportState() (int, error) {
	args := c.Called()
	return args.Int(0), args.Error(1)
}

func (c *Client) GetUser(username string) (*model.User, error) {
	args := c.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (c *Client) GetLeaguesForUser(userID, season string) ([]model.League, error) {
	args := c.Called(userID, season)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.League), args.Error(1)
}

func (c *Client) GetLeague(leagueID string) (*model.League, error) {
	args := c.Called(leagueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.League), args.Error(1)
}

func (c *Client) GetLeagueUsers(leagueID string) ([]model.User, error) {
	args := c.Called(leagueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (c *Client) GetRosters(leagueID string) ([]model.Roster, error) {
	args := c.Called(leagueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Roster), args.Error(1)
}

func (c *Client) LoadPlayers() ([]model.Player, error) {
	args := c.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Player), args.Error(1)
}

func (c *Client) GetSeasonStats(season string) (map[string]model.StatLine, error) {
	args := c.Called(season)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]model.StatLine), args.Error(1)
}

func (c *Client) GetPlayerProjection(playerID, season string, week int) (model.StatLine, error) {
	args := c.Called(playerID, season, week)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.StatLine), args.Error(1)
}

func (c *Client) GetTradedPicks(leagueID string) ([]model.TradedPick, error) {
	args := c.Called(leagueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TradedPick), args.Error(1)
}

func (c *Client) GetTransactions(leagueID string, week int) ([]model.Transaction, error) {
	args := c.Called(leagueID, week)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}
