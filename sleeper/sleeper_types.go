package sleeper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/skjjcruz/owner-dashboard-v3/model"
)

type sleeperState struct {
	Week   int    `json:"week"`
	Season string `json:"season"`
}

type sleeperUser struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

func (u *sleeperUser) toUser() *model.User {
	return &model.User{
		ID:          u.UserID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
	}
}

type sleeperLeague struct {
	LeagueID        string         `json:"league_id"`
	Name            string         `json:"name"`
	Season          string         `json:"season"`
	ScoringSettings map[string]any `json:"scoring_settings"`
	Settings        leagueSettings `json:"settings"`
}

type leagueSettings struct {
	DraftRounds int `json:"draft_rounds"`
}

const defaultDraftRounds = 7

func (l *sleeperLeague) toLeague() *model.League {
	rounds := l.Settings.DraftRounds
	if rounds < 1 {
		rounds = defaultDraftRounds
	}
	return &model.League{
		ID:          l.LeagueID,
		Name:        l.Name,
		Season:      l.Season,
		Scoring:     toScoringRules(l.ScoringSettings),
		DraftRounds: rounds,
	}
}

// toScoringRules keeps only the numeric entries of a league's
// scoring_settings. Sleeper occasionally includes string or null values
// there; those are ignored rather than treated as zero multipliers.
func toScoringRules(settings map[string]any) model.ScoringRules {
	rules := make(model.ScoringRules, len(settings))
	for key, v := range settings {
		if mult, ok := v.(float64); ok {
			rules[key] = mult
		}
	}
	return rules
}

type sleeperPlayer struct {
	ID        string `json:"player_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
	Team      string `json:"team"`
	YearsExp  *int   `json:"years_exp"`
}

func (p *sleeperPlayer) toPlayer() *model.Player {
	yearsExp := model.YearsExpUnknown
	if p.YearsExp != nil {
		yearsExp = *p.YearsExp
	}
	return &model.Player{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Position:  model.ParsePosition(p.Position),
		Team:      p.Team,
		YearsExp:  yearsExp,
	}
}

type sleeperRoster struct {
	RosterID int      `json:"roster_id"`
	OwnerID  string   `json:"owner_id"`
	Players  []string `json:"players"`
	Starters []string `json:"starters"`
	Reserve  []string `json:"reserve"`
	Taxi     []string `json:"taxi"`
}

func (r *sleeperRoster) toRoster() *model.Roster {
	return &model.Roster{
		RosterID: r.RosterID,
		OwnerID:  r.OwnerID,
		Players:  r.Players,
		Starters: r.Starters,
		Reserve:  r.Reserve,
		Taxi:     r.Taxi,
	}
}

type sleeperTradedPick struct {
	Season   string `json:"season"`
	Round    int    `json:"round"`
	RosterID int    `json:"roster_id"`
	OwnerID  any    `json:"owner_id"`
}

func (p *sleeperTradedPick) toTradedPick() *model.TradedPick {
	return &model.TradedPick{
		Season:   p.Season,
		Round:    p.Round,
		RosterID: p.RosterID,
		OwnerRef: refString(p.OwnerID),
	}
}

// refString normalizes the new-owner reference of a traded pick. Depending
// on league configuration sleeper sends it as a JSON number (a roster id) or
// a string (a user id); either way the resolver wants a string key.
func refString(v any) string {
	switch ref := v.(type) {
	case string:
		return ref
	case float64:
		return strconv.FormatInt(int64(ref), 10)
	default:
		return ""
	}
}

type sleeperTransaction struct {
	TransactionID string         `json:"transaction_id"`
	Type          string         `json:"type"`
	Status        string         `json:"status"`
	Creator       string         `json:"creator"`
	OwnerID       string         `json:"owner_id"`
	Created       int64          `json:"created"`
	Adds          map[string]int `json:"adds"`
	Drops         map[string]int `json:"drops"`
	RosterIDs     []int          `json:"roster_ids"`
}

func (tx *sleeperTransaction) toTransaction() *model.Transaction {
	return &model.Transaction{
		ID:        tx.TransactionID,
		Type:      tx.Type,
		Status:    tx.Status,
		CreatorID: tx.Creator,
		OwnerID:   tx.OwnerID,
		Created:   time.UnixMilli(tx.Created).UTC(),
		Adds:      tx.Adds,
		Drops:     tx.Drops,
	}
}

type statsRecord struct {
	PlayerID string         `json:"player_id"`
	Stats    map[string]any `json:"stats"`
}

// parseStatsPayload normalizes a season stats response to player id ->
// stat line. Sleeper has served this payload both as an id-keyed mapping and
// as an array of records; the two shapes are told apart by the first byte
// and never leak past this package.
func parseStatsPayload(raw []byte) (map[string]model.StatLine, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return map[string]model.StatLine{}, nil
	}

	if trimmed[0] == '[' {
		var records []statsRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("error parsing stats array: %w", err)
		}

		result := make(map[string]model.StatLine, len(records))
		for _, rec := range records {
			if rec.PlayerID == "" {
				continue
			}
			result[rec.PlayerID] = toStatLine(rec.Stats)
		}
		return result, nil
	}

	var keyed map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &keyed); err != nil {
		return nil, fmt.Errorf("error parsing stats mapping: %w", err)
	}

	result := make(map[string]model.StatLine, len(keyed))
	for playerID, entry := range keyed {
		line, err := parseStatLine(entry)
		if err != nil {
			return nil, fmt.Errorf("error parsing stats for player %s: %w", playerID, err)
		}
		result[playerID] = line
	}
	return result, nil
}

// parseStatLine decodes a single stat entry, unwrapping the {stats: {...}}
// envelope when present and keeping only numeric values.
func parseStatLine(raw []byte) (model.StatLine, error) {
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(raw), &entry); err != nil {
		return nil, fmt.Errorf("error parsing stat line: %w", err)
	}

	if wrapped, ok := entry["stats"].(map[string]any); ok {
		return toStatLine(wrapped), nil
	}
	return toStatLine(entry), nil
}

func toStatLine(values map[string]any) model.StatLine {
	line := make(model.StatLine, len(values))
	for key, v := range values {
		if n, ok := v.(float64); ok {
			line[key] = n
		}
	}
	return line
}
