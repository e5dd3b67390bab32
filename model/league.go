package model

// League holds the settings for a single sleeper league that the dashboard
// cares about: its scoring rules and how many rounds its drafts have.
type League struct {
	ID          string
	Name        string
	Season      string
	Scoring     ScoringRules
	DraftRounds int
}

type User struct {
	ID          string
	Username    string
	DisplayName string
}

// DisplayOrUsername is the name shown in the UI for a user. It prefers the
// display name, falls back to the username, and finally to "Unknown" so a
// missing user reference never breaks a render.
func (u *User) DisplayOrUsername() string {
	if u == nil {
		return "Unknown"
	}
	if u.DisplayName != "" {
		return u.DisplayName
	}
	if u.Username != "" {
		return u.Username
	}
	return "Unknown"
}

// Roster belongs to exactly one owning user. Reserve and taxi are subsets of
// Players; a player may also appear in Starters independently.
type Roster struct {
	RosterID int
	OwnerID  string
	Players  []string
	Starters []string
	Reserve  []string
	Taxi     []string
}
