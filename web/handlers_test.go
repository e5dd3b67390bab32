package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/skjjcruz/owner-dashboard-v3/controller"
	"github.com/skjjcruz/owner-dashboard-v3/controller/mockcontroller"
	"github.com/skjjcruz/owner-dashboard-v3/model"
	"github.com/skjjcruz/owner-dashboard-v3/sleeper"
	"github.com/stretchr/testify/mock"
)

func serveRequest(ctrl controller.C, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	getRouter(ctrl, newRender()).ServeHTTP(rr, req)
	return rr
}

func TestRootHandler(t *testing.T) {
	ctrl := new(mockcontroller.C)
	ctrl.On("LockedUsername", mock.Anything).Return("sleeperuser", nil)
	ctrl.On("LastSelection", mock.Anything).Return("924039165950484480", "2026", "2025")
	ctrl.On("ActiveSession").Return(nil)

	rr := serveRequest(ctrl, http.MethodGet, "/")

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status code: %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "sleeperuser") {
		t.Errorf("expected the locked username on the page")
	}
	if !strings.Contains(rr.Body.String(), "/leagues/924039165950484480") {
		t.Errorf("expected a shortcut to the remembered league")
	}
}

func TestLeaguesHandler(t *testing.T) {
	user := &model.User{ID: "100001", Username: "sleeperuser", DisplayName: "Puk Nukem"}
	leagues := []model.League{
		{ID: "924039165950484480", Name: "Footclan & Friends Dynasty", Season: "2026", DraftRounds: 3},
	}

	tests := map[string]struct {
		target     string
		locked     string
		setup      func(ctrl *mockcontroller.C)
		exStatus   int
		exContains string
	}{
		"success": {
			target: "/leagues?username=sleeperuser&season=2026",
			setup: func(ctrl *mockcontroller.C) {
				ctrl.On("GetLeaguesForUser", mock.Anything, "sleeperuser", "2026").Return(user, leagues, nil)
			},
			exStatus:   http.StatusOK,
			exContains: "Footclan &amp; Friends Dynasty",
		},
		"falls back to the locked username": {
			target: "/leagues",
			locked: "sleeperuser",
			setup: func(ctrl *mockcontroller.C) {
				ctrl.On("GetLeaguesForUser", mock.Anything, "sleeperuser", controller.DefaultLeagueSeason).Return(user, leagues, nil)
			},
			exStatus: http.StatusOK,
		},
		"no username anywhere": {
			target:     "/leagues",
			setup:      func(ctrl *mockcontroller.C) {},
			exStatus:   http.StatusBadRequest,
			exContains: "username is required",
		},
		"unknown user": {
			target: "/leagues?username=nobody",
			setup: func(ctrl *mockcontroller.C) {
				ctrl.On("GetLeaguesForUser", mock.Anything, "nobody", controller.DefaultLeagueSeason).
					Return(nil, nil, fmt.Errorf("error looking up user nobody: %w", sleeper.ErrUserNotFound))
			},
			exStatus:   http.StatusNotFound,
			exContains: "no sleeper user named nobody",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := new(mockcontroller.C)
			ctrl.On("LockedUsername", mock.Anything).Return(tc.locked, nil)
			tc.setup(ctrl)

			rr := serveRequest(ctrl, http.MethodGet, tc.target)

			if rr.Code != tc.exStatus {
				t.Fatalf("expected status %d, got %d", tc.exStatus, rr.Code)
			}
			if tc.exContains != "" && !strings.Contains(rr.Body.String(), tc.exContains) {
				t.Errorf("body does not contain %q", tc.exContains)
			}
		})
	}
}

func TestLoadLeagueHandler(t *testing.T) {
	ctrl := new(mockcontroller.C)
	ctrl.On("LoadLeague", mock.Anything, "924039165950484480", controller.DefaultStatsSeason).
		Return(&controller.Session{}, nil)

	rr := serveRequest(ctrl, http.MethodPost, "/leagues/924039165950484480")

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("unexpected status code: %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/leagues/924039165950484480" {
		t.Errorf("redirect location not as expected: %s", loc)
	}
}

func TestGetLeagueHandler(t *testing.T) {
	session := &controller.Session{
		League: &model.League{ID: "924039165950484480", Name: "Footclan & Friends Dynasty"},
		Status: "Ready - League 2026, Stats 2025, Week 10",
	}

	t.Run("loaded", func(t *testing.T) {
		ctrl := new(mockcontroller.C)
		ctrl.On("ActiveSession").Return(session)
		ctrl.On("RecentTransactions", mock.Anything).Return([]model.TransactionSummary{}, nil)

		rr := serveRequest(ctrl, http.MethodGet, "/leagues/924039165950484480")
		if rr.Code != http.StatusOK {
			t.Fatalf("unexpected status code: %d", rr.Code)
		}
		if !strings.Contains(rr.Body.String(), "Ready - League 2026, Stats 2025, Week 10") {
			t.Errorf("expected the session status on the page")
		}
	})

	t.Run("different league loaded", func(t *testing.T) {
		ctrl := new(mockcontroller.C)
		ctrl.On("ActiveSession").Return(session)

		rr := serveRequest(ctrl, http.MethodGet, "/leagues/555")
		if rr.Code != http.StatusNotFound {
			t.Fatalf("unexpected status code: %d", rr.Code)
		}
	})

	t.Run("nothing loaded", func(t *testing.T) {
		ctrl := new(mockcontroller.C)
		ctrl.On("ActiveSession").Return(nil)

		rr := serveRequest(ctrl, http.MethodGet, "/leagues/924039165950484480")
		if rr.Code != http.StatusNotFound {
			t.Fatalf("unexpected status code: %d", rr.Code)
		}
	})
}

func TestCompareHandler(t *testing.T) {
	session := &controller.Session{
		League: &model.League{ID: "924039165950484480"},
		Status: "Ready - League 2026, Stats 2025, Week 10",
	}
	comparison := &model.Comparison{
		Left: model.TeamSheet{RosterID: 1, OwnerName: "Puk Nukem", Groups: map[model.Position][]model.ComparisonRow{
			model.POS_QB: {{PlayerID: "6904", Name: "Jalen Hurts", Team: "PHI", Points: 300, GamesPlayed: 16, Average: 18.75, Projection: "pending", Status: "START"}},
		}},
		Right: model.TeamSheet{RosterID: 2, OwnerName: "No-Bell Prizes", Groups: map[model.Position][]model.ComparisonRow{}},
		Positions: []model.Position{model.POS_QB},
	}

	t.Run("success", func(t *testing.T) {
		ctrl := new(mockcontroller.C)
		ctrl.On("CompareRosters", mock.Anything, 1, 2).Return(comparison, nil)
		ctrl.On("ActiveSession").Return(session)
		ctrl.On("ProjectionVersion").Return(int64(7))

		rr := serveRequest(ctrl, http.MethodGet, "/leagues/924039165950484480/compare?left=1&right=2")
		if rr.Code != http.StatusOK {
			t.Fatalf("unexpected status code: %d", rr.Code)
		}
		body := rr.Body.String()
		if !strings.Contains(body, "Jalen Hurts") || !strings.Contains(body, "300.0") {
			t.Errorf("expected the ranked player row on the page")
		}
		if !strings.Contains(body, `data-player-id="6904"`) {
			t.Errorf("expected the projection cell to carry the player id")
		}
	})

	t.Run("bad roster id", func(t *testing.T) {
		ctrl := new(mockcontroller.C)

		rr := serveRequest(ctrl, http.MethodGet, "/leagues/924039165950484480/compare?left=abc&right=2")
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("unexpected status code: %d", rr.Code)
		}
	})

	t.Run("no session", func(t *testing.T) {
		ctrl := new(mockcontroller.C)
		ctrl.On("CompareRosters", mock.Anything, 1, 2).Return(nil, controller.ErrNoSession)

		rr := serveRequest(ctrl, http.MethodGet, "/leagues/924039165950484480/compare?left=1&right=2")
		if rr.Code != http.StatusNotFound {
			t.Fatalf("unexpected status code: %d", rr.Code)
		}
	})

	t.Run("roster not in league", func(t *testing.T) {
		ctrl := new(mockcontroller.C)
		ctrl.On("CompareRosters", mock.Anything, 1, 99).Return(nil, errors.New("roster 99 is not in the league"))

		rr := serveRequest(ctrl, http.MethodGet, "/leagues/924039165950484480/compare?left=1&right=99")
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("unexpected status code: %d", rr.Code)
		}
	})
}

func TestProjectionsHandler(t *testing.T) {
	ctrl := new(mockcontroller.C)
	ctrl.On("ProjectionsFor", []string{"6904", "9509"}).
		Return(int64(4), map[string]string{"6904": "22.0", "9509": "pending"})

	rr := serveRequest(ctrl, http.MethodGet, "/projections?ids=6904,9509")
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status code: %d", rr.Code)
	}

	var resp struct {
		Version     int64             `json:"version"`
		Projections map[string]string `json:"projections"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("error parsing response: %v", err)
	}
	if resp.Version != 4 {
		t.Errorf("expected version 4, got %d", resp.Version)
	}
	if resp.Projections["6904"] != "22.0" || resp.Projections["9509"] != "pending" {
		t.Errorf("projections not as expected: %v", resp.Projections)
	}
}

func TestPlayerSearchHandler(t *testing.T) {
	ctrl := new(mockcontroller.C)
	ctrl.On("SearchPlayers", "hurts").Return([]model.Player{
		{ID: "6904", FirstName: "Jalen", LastName: "Hurts", Position: model.POS_QB, Team: "PHI"},
	})

	rr := serveRequest(ctrl, http.MethodGet, "/players?q=hurts")
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status code: %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Jalen Hurts") {
		t.Errorf("expected the search result on the page")
	}

	// Without a query the page renders the empty form and does not search.
	ctrl2 := new(mockcontroller.C)
	rr = serveRequest(ctrl2, http.MethodGet, "/players")
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status code: %d", rr.Code)
	}
	ctrl2.AssertNotCalled(t, "SearchPlayers", mock.Anything)
}

func TestUnlockHandler(t *testing.T) {
	ctrl := new(mockcontroller.C)
	ctrl.On("UnlockUsername", mock.Anything).Return(nil).Once()

	rr := serveRequest(ctrl, http.MethodPost, "/unlock")
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("unexpected status code: %d", rr.Code)
	}
	ctrl.AssertExpectations(t)
}
