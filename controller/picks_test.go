package controller

import (
	"reflect"
	"testing"

	"github.com/skjjcruz/owner-dashboard-v3/model"
)

func pickTestRosters() ([]model.Roster, map[string]*model.User) {
	rosters := []model.Roster{
		{RosterID: 1, OwnerID: "100001"},
		{RosterID: 2, OwnerID: "100002"},
		{RosterID: 3, OwnerID: "100003"},
	}
	users := map[string]*model.User{
		"100001": {ID: "100001", DisplayName: "Puk Nukem"},
		"100002": {ID: "100002", DisplayName: "No-Bell Prizes"},
		"100003": {ID: "100003", Username: "gee17"},
	}
	return rosters, users
}

var pickTestYears = []string{"2026", "2027"}

func TestResolvePickOwnershipBaseline(t *testing.T) {
	rosters, users := pickTestRosters()

	ownership := resolvePickOwnership(rosters, users, nil, pickTestYears, 2)

	if len(ownership) != 3 {
		t.Fatalf("expected 3 owners, got %d", len(ownership))
	}
	for _, r := range rosters {
		claims := ownership[r.OwnerID]
		if len(claims) != 4 {
			t.Errorf("owner %s: expected 4 claims, got %d", r.OwnerID, len(claims))
		}
		for _, claim := range claims {
			if claim.OriginRoster != r.RosterID {
				t.Errorf("owner %s: baseline claim from roster %d", r.OwnerID, claim.OriginRoster)
			}
			if claim.OriginOwnerID != r.OwnerID {
				t.Errorf("owner %s: baseline origin owner %s", r.OwnerID, claim.OriginOwnerID)
			}
		}
	}
}

func TestResolvePickOwnershipTrades(t *testing.T) {
	rosters, users := pickTestRosters()

	picks := []model.TradedPick{
		{Season: "2026", Round: 1, RosterID: 1, OwnerRef: "2"},
		{Season: "2027", Round: 2, RosterID: 3, OwnerRef: "1"},
	}

	ownership := resolvePickOwnership(rosters, users, picks, pickTestYears, 2)

	expected := map[string][]model.PickClaim{
		"100001": {
			{Year: "2026", Round: 2, OriginRoster: 1, OriginOwnerID: "100001"},
			{Year: "2027", Round: 1, OriginRoster: 1, OriginOwnerID: "100001"},
			{Year: "2027", Round: 2, OriginRoster: 1, OriginOwnerID: "100001"},
			{Year: "2027", Round: 2, OriginRoster: 3, OriginOwnerID: "100003"},
		},
		"100002": {
			{Year: "2026", Round: 1, OriginRoster: 1, OriginOwnerID: "100001"},
			{Year: "2026", Round: 1, OriginRoster: 2, OriginOwnerID: "100002"},
			{Year: "2026", Round: 2, OriginRoster: 2, OriginOwnerID: "100002"},
			{Year: "2027", Round: 1, OriginRoster: 2, OriginOwnerID: "100002"},
			{Year: "2027", Round: 2, OriginRoster: 2, OriginOwnerID: "100002"},
		},
		"100003": {
			{Year: "2026", Round: 1, OriginRoster: 3, OriginOwnerID: "100003"},
			{Year: "2026", Round: 2, OriginRoster: 3, OriginOwnerID: "100003"},
			{Year: "2027", Round: 1, OriginRoster: 3, OriginOwnerID: "100003"},
		},
	}

	if !reflect.DeepEqual(expected, ownership) {
		t.Errorf("ownership not as expected, got: %v", ownership)
	}
}

func TestResolvePickOwnershipLastRecordWins(t *testing.T) {
	rosters, users := pickTestRosters()

	picks := []model.TradedPick{
		{Season: "2026", Round: 1, RosterID: 1, OwnerRef: "2"},
		{Season: "2026", Round: 1, RosterID: 1, OwnerRef: "3"},
	}

	ownership := resolvePickOwnership(rosters, users, picks, pickTestYears, 2)

	if len(ownership["100003"]) != 5 {
		t.Errorf("expected the re-trade to land with owner 100003, got %v", ownership["100003"])
	}
	if len(ownership["100002"]) != 4 {
		t.Errorf("expected owner 100002 to hold only baseline picks, got %v", ownership["100002"])
	}

	// Replaying the same records twice is a no-op.
	again := resolvePickOwnership(rosters, users, picks, pickTestYears, 2)
	if !reflect.DeepEqual(ownership, again) {
		t.Errorf("resolution is not deterministic across replays")
	}
}

func TestResolvePickOwnershipDropsInvalidRecords(t *testing.T) {
	rosters, users := pickTestRosters()

	picks := []model.TradedPick{
		{Season: "2023", Round: 1, RosterID: 1, OwnerRef: "2"}, // year out of range
		{Season: "2026", Round: 0, RosterID: 1, OwnerRef: "2"},
		{Season: "2026", Round: 9, RosterID: 1, OwnerRef: "2"},
		{Season: "2026", Round: 1, RosterID: 99, OwnerRef: "2"}, // unknown origin roster
		{Season: "2026", Round: 1, RosterID: 1, OwnerRef: ""},   // unresolvable new owner
		{Season: "2026", Round: 1, RosterID: 1, OwnerRef: "42"},
	}

	ownership := resolvePickOwnership(rosters, users, picks, pickTestYears, 2)
	baseline := resolvePickOwnership(rosters, users, nil, pickTestYears, 2)

	if !reflect.DeepEqual(baseline, ownership) {
		t.Errorf("invalid records must leave the baseline untouched, got: %v", ownership)
	}
}

func TestResolvePickOwnershipUserRefs(t *testing.T) {
	rosters, users := pickTestRosters()

	// All references are user ids, so the vote picks user mode.
	picks := []model.TradedPick{
		{Season: "2026", Round: 1, RosterID: 1, OwnerRef: "100003"},
		{Season: "2026", Round: 2, RosterID: 2, OwnerRef: "100003"},
	}

	ownership := resolvePickOwnership(rosters, users, picks, pickTestYears, 2)

	if len(ownership["100003"]) != 6 {
		t.Errorf("expected owner 100003 to gain both picks, got %v", ownership["100003"])
	}
}

func TestResolvePickOwnershipRefVoteTie(t *testing.T) {
	// The single reference "1" is both a valid roster id and a valid user id.
	// Ties go to the roster interpretation, so the pick lands with the owner
	// of roster 1, not with user "1".
	rosters := []model.Roster{
		{RosterID: 1, OwnerID: "2"},
		{RosterID: 2, OwnerID: "1"},
	}
	users := map[string]*model.User{
		"1": {ID: "1", DisplayName: "One"},
		"2": {ID: "2", DisplayName: "Two"},
	}

	picks := []model.TradedPick{
		{Season: "2026", Round: 1, RosterID: 2, OwnerRef: "1"},
	}

	ownership := resolvePickOwnership(rosters, users, picks, []string{"2026"}, 1)

	if len(ownership["2"]) != 2 {
		t.Errorf("expected the roster interpretation to win the tie, got %v", ownership)
	}
}

func TestAssemblePickSummaries(t *testing.T) {
	rosters, users := pickTestRosters()

	ownership := resolvePickOwnership(rosters, users, []model.TradedPick{
		{Season: "2026", Round: 1, RosterID: 1, OwnerRef: "2"},
	}, pickTestYears, 2)

	summaries := assemblePickSummaries(rosters, users, ownership)

	if len(summaries) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(summaries))
	}

	expectedOrder := []string{"Puk Nukem", "No-Bell Prizes", "gee17"}
	for i, name := range expectedOrder {
		if summaries[i].OwnerName != name {
			t.Errorf("summary %d: expected owner %s, got %s", i, name, summaries[i].OwnerName)
		}
	}
	if len(summaries[0].Claims) != 3 || len(summaries[1].Claims) != 5 {
		t.Errorf("claim counts not as expected: %d and %d", len(summaries[0].Claims), len(summaries[1].Claims))
	}
}
