package sleeper

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/skjjcruz/owner-dashboard-v3/model"
)

const SleeperURL = "https://api.sleeper.app"

var (
	ErrUserNotFound = errors.New("user not found")
)

// Client wraps the read-only parts of the sleeper API that the dashboard
// needs. All methods issue a single GET and convert the response into model
// types; nothing here caches.
type Client interface {
	// GetSportState returns the current NFL week.
	GetSportState() (int, error)
	GetUser(username string) (*model.User, error)
	GetLeaguesForUser(userID, season string) ([]model.League, error)
	GetLeague(leagueID string) (*model.League, error)
	GetLeagueUsers(leagueID string) ([]model.User, error)
	GetRosters(leagueID string) ([]model.Roster, error)
	LoadPlayers() ([]model.Player, error)
	// GetSeasonStats returns season stat lines keyed by player id. Both
	// response shapes sleeper uses (id-keyed map and array of records) are
	// accepted and normalized here.
	GetSeasonStats(season string) (map[string]model.StatLine, error)
	GetPlayerProjection(playerID, season string, week int) (model.StatLine, error)
	GetTradedPicks(leagueID string) ([]model.TradedPick, error)
	GetTransactions(leagueID string, week int) ([]model.Transaction, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New() (Client, error) {
	c := &client{
		url: SleeperURL,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
	return c, nil
}

// NewForTest returns a client pointed at a fake server.
func NewForTest(url string) Client {
	return &client{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *client) GetSportState() (int, error) {
	var state sleeperState
	if err := c.getJSON("/v1/state/nfl", &state); err != nil {
		return 0, err
	}
	if state.Week < 1 {
		return 0, fmt.Errorf("sleeper returned a bad week number: %d", state.Week)
	}
	return state.Week, nil
}

func (c *client) GetUser(username string) (*model.User, error) {
	var user *sleeperUser
	if err := c.getJSON(fmt.Sprintf("/v1/user/%s", url.PathEscape(username)), &user); err != nil {
		return nil, err
	}
	// sleeper returns a 200 with "null" as the body for unknown users
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user.toUser(), nil
}

func (c *client) GetLeaguesForUser(userID, season string) ([]model.League, error) {
	var leagues []sleeperLeague
	if err := c.getJSON(fmt.Sprintf("/v1/user/%s/leagues/nfl/%s", userID, season), &leagues); err != nil {
		return nil, err
	}

	result := make([]model.League, 0, len(leagues))
	for _, l := range leagues {
		result = append(result, *l.toLeague())
	}
	return result, nil
}

func (c *client) GetLeague(leagueID string) (*model.League, error) {
	var league *sleeperLeague
	if err := c.getJSON(fmt.Sprintf("/v1/league/%s", leagueID), &league); err != nil {
		return nil, err
	}
	if league == nil {
		return nil, fmt.Errorf("league %s not found", leagueID)
	}
	return league.toLeague(), nil
}

func (c *client) GetLeagueUsers(leagueID string) ([]model.User, error) {
	var users []sleeperUser
	if err := c.getJSON(fmt.Sprintf("/v1/league/%s/users", leagueID), &users); err != nil {
		return nil, err
	}

	result := make([]model.User, 0, len(users))
	for _, u := range users {
		result = append(result, *u.toUser())
	}
	return result, nil
}

func (c *client) GetRosters(leagueID string) ([]model.Roster, error) {
	var rosters []sleeperRoster
	if err := c.getJSON(fmt.Sprintf("/v1/league/%s/rosters", leagueID), &rosters); err != nil {
		return nil, err
	}

	result := make([]model.Roster, 0, len(rosters))
	for _, r := range rosters {
		result = append(result, *r.toRoster())
	}
	return result, nil
}

func (c *client) LoadPlayers() ([]model.Player, error) {
	var parsed map[string]sleeperPlayer
	if err := c.getJSON("/v1/players/nfl", &parsed); err != nil {
		return nil, err
	}

	result := make([]model.Player, 0, len(parsed))
	for id, p := range parsed {
		if p.FirstName == "Player" && p.LastName == "Invalid" {
			continue
		}
		if p.ID == "" {
			p.ID = id
		}
		result = append(result, *p.toPlayer())
	}
	return result, nil
}

func (c *client) GetSeasonStats(season string) (map[string]model.StatLine, error) {
	raw, err := c.getBody(fmt.Sprintf("/v1/stats/nfl/regular/%s", season))
	if err != nil {
		return nil, err
	}
	return parseStatsPayload(raw)
}

func (c *client) GetPlayerProjection(playerID, season string, week int) (model.StatLine, error) {
	path := fmt.Sprintf("/v1/projections/nfl/player/%s?season_type=regular&season=%s&week=%d",
		url.PathEscape(playerID), season, week)
	raw, err := c.getBody(path)
	if err != nil {
		return nil, err
	}
	return parseStatLine(raw)
}

func (c *client) GetTradedPicks(leagueID string) ([]model.TradedPick, error) {
	var picks []sleeperTradedPick
	if err := c.getJSON(fmt.Sprintf("/v1/league/%s/traded_picks", leagueID), &picks); err != nil {
		return nil, err
	}

	result := make([]model.TradedPick, 0, len(picks))
	for _, p := range picks {
		result = append(result, *p.toTradedPick())
	}
	return result, nil
}

func (c *client) GetTransactions(leagueID string, week int) ([]model.Transaction, error) {
	var txs []sleeperTransaction
	if err := c.getJSON(fmt.Sprintf("/v1/league/%s/transactions/%d", leagueID, week), &txs); err != nil {
		return nil, err
	}

	result := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		result = append(result, *tx.toTransaction())
	}
	return result, nil
}

func (c *client) getJSON(path string, out any) error {
	body, err := c.getBody(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("error parsing response from sleeper: %w", err)
	}
	return nil
}

func (c *client) getBody(path string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, c.url+path, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response from sleeper: %w", err)
	}
	return body, nil
}
