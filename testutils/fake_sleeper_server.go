package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
)

//go:embed sleeperdata
var sleeperdata embed.FS

// Well-known ids served by the fake server, shared across package tests.
const (
	FakeLeagueID = "924039165950484480"
	FakeUserID   = "100001"
	FakeUsername = "sleeperuser"
)

type FakeSleeperServer struct {
	s *httptest.Server

	projectionCalls atomic.Int64
}

func NewFakeSleeperServer() *FakeSleeperServer {
	f := &FakeSleeperServer{}

	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Get("/state/nfl", stateHandler)
		r.Get("/players/nfl", nflPlayersHandler)
		r.Get("/stats/nfl/regular/{season}", seasonStatsHandler)
		r.Get("/projections/nfl/player/{playerID}", f.playerProjectionHandler)

		r.Route("/user", func(r chi.Router) {
			r.Get("/{userID}/leagues/nfl/{year}", userLeaguesHandler)
			r.Get("/{username}", sleeperUserHandler)
		})

		r.Route("/league/{leagueID}", func(r chi.Router) {
			r.Get("/", leagueHandler)
			r.Get("/users", leagueUsersHandler)
			r.Get("/rosters", leagueRostersHandler)
			r.Get("/traded_picks", tradedPicksHandler)
			r.Get("/transactions/{week}", transactionsHandler)
		})
	})

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeSleeperServer) Close() {
	f.s.Close()
}

func (f *FakeSleeperServer) URL() string {
	return f.s.URL
}

// ProjectionCalls reports how many projection fetches the server has seen,
// for asserting request deduplication.
func (f *FakeSleeperServer) ProjectionCalls() int {
	return int(f.projectionCalls.Load())
}

func stateHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "state.json")
}

func nflPlayersHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "players.json")
}

func seasonStatsHandler(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "season") {
	case "2025":
		serveFile(w, "stats_map.json")
	case "2024":
		// older seasons are served in the array-of-records shape
		serveFile(w, "stats_array.json")
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *FakeSleeperServer) playerProjectionHandler(w http.ResponseWriter, r *http.Request) {
	f.projectionCalls.Add(1)

	switch chi.URLParam(r, "playerID") {
	case "6904":
		serveFile(w, "projection_6904.json")
	case "9509":
		serveFile(w, "projection_9509.json")
	case "9999":
		w.WriteHeader(http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("null"))
	}
}

func userLeaguesHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	year := chi.URLParam(r, "year")

	if userID == FakeUserID && year == "2026" {
		serveFile(w, "user_leagues.json")
	} else {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
	}
}

func sleeperUserHandler(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == FakeUsername {
		serveFile(w, "sleeperuser.json")
	} else {
		// requesting a user that doesn't exist returns a 200 with "null" as the body
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("null"))
	}
}

func leagueHandler(w http.ResponseWriter, r *http.Request) {
	if !isFakeLeague(w, r) {
		return
	}
	serveFile(w, "league.json")
}

func leagueUsersHandler(w http.ResponseWriter, r *http.Request) {
	if !isFakeLeague(w, r) {
		return
	}
	serveFile(w, "league_users.json")
}

func leagueRostersHandler(w http.ResponseWriter, r *http.Request) {
	if !isFakeLeague(w, r) {
		return
	}
	serveFile(w, "league_rosters.json")
}

func tradedPicksHandler(w http.ResponseWriter, r *http.Request) {
	if !isFakeLeague(w, r) {
		return
	}
	serveFile(w, "traded_picks.json")
}

func transactionsHandler(w http.ResponseWriter, r *http.Request) {
	if !isFakeLeague(w, r) {
		return
	}
	if chi.URLParam(r, "week") == "10" {
		serveFile(w, "transactions.json")
	} else {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
	}
}

func isFakeLeague(w http.ResponseWriter, r *http.Request) bool {
	if chi.URLParam(r, "leagueID") != FakeLeagueID {
		w.WriteHeader(http.StatusNotFound)
		return false
	}
	return true
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := sleeperdata.ReadFile(fmt.Sprintf("sleeperdata/%s", name))
	if err != nil {
		log.Printf("error reading sleeperdata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
