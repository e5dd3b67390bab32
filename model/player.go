package model

import (
	"fmt"
	"strings"
)

// YearsExpUnknown is used when sleeper has no experience data for a player.
const YearsExpUnknown = -1

// Player is immutable reference data loaded once per session and shared
// read-only by everything that needs it.
type Player struct {
	ID        string
	FirstName string
	LastName  string
	Position  Position
	Team      string
	YearsExp  int
}

func (p *Player) FullName() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", p.FirstName, p.LastName))
}

// Rookie reports whether this is the player's first season. Unknown
// experience is not treated as a rookie.
func (p *Player) Rookie() bool {
	return p.YearsExp == 0
}

// Take a full name, like "Deebo Samuel Sr." and return "Deebo Samuel".
func TrimNameSuffix(fullName string) string {
	suffixList := []string{
		"Jr.",
		"Sr.",
		"II",
		"IV",
	}

	for _, s := range suffixList {
		fullName = strings.TrimSuffix(fullName, s)
	}

	return strings.TrimSpace(fullName)
}
