package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/skjjcruz/owner-dashboard-v3/controller"
	"github.com/skjjcruz/owner-dashboard-v3/model"
	"github.com/skjjcruz/owner-dashboard-v3/sleeper"
	"github.com/unrolled/render"
)

func rootHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locked, err := ctrl.LockedUsername(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		lastLeagueID, _, lastStatsSeason := ctrl.LastSelection(r.Context())

		data := map[string]any{
			"username":        locked,
			"seasons":         controller.LeagueSeasons,
			"defaultSeason":   controller.DefaultLeagueSeason,
			"session":         ctrl.ActiveSession(),
			"lastLeagueID":    lastLeagueID,
			"lastStatsSeason": lastStatsSeason,
		}
		render.HTML(w, http.StatusOK, "index", data)
	}
}

func unlockHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.UnlockUsername(r.Context()); err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func leaguesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get("username")
		if username == "" {
			locked, err := ctrl.LockedUsername(r.Context())
			if err != nil {
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
				return
			}
			username = locked
		}
		if username == "" {
			render.HTML(w, http.StatusBadRequest, "400", "a sleeper username is required")
			return
		}

		season := r.URL.Query().Get("season")
		if season == "" {
			season = controller.DefaultLeagueSeason
		}

		user, leagues, err := ctrl.GetLeaguesForUser(r.Context(), username, season)
		if err != nil {
			if errors.Is(err, sleeper.ErrUserNotFound) {
				render.HTML(w, http.StatusNotFound, "404", fmt.Sprintf("no sleeper user named %s", username))
			} else {
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			}
			return
		}

		data := map[string]any{
			"user":               user,
			"leagues":            leagues,
			"season":             season,
			"statsSeasons":       controller.StatsSeasons,
			"defaultStatsSeason": controller.DefaultStatsSeason,
		}
		render.HTML(w, http.StatusOK, "leagues", data)
	}
}

func loadLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		leagueID := chi.URLParam(r, "leagueID")
		statsSeason := r.PostForm.Get("stats-season")
		if statsSeason == "" {
			statsSeason = controller.DefaultStatsSeason
		}

		if _, err := ctrl.LoadLeague(r.Context(), leagueID, statsSeason); err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/leagues/%s", leagueID), http.StatusSeeOther)
	}
}

func getLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")

		session := ctrl.ActiveSession()
		if session == nil || session.League.ID != leagueID {
			render.HTML(w, http.StatusNotFound, "404", "league is not loaded")
			return
		}

		transactions, err := ctrl.RecentTransactions(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		data := map[string]any{
			"session":      session,
			"transactions": transactions,
		}
		render.HTML(w, http.StatusOK, "league", data)
	}
}

func compareHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		left, err := strconv.Atoi(r.URL.Query().Get("left"))
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", fmt.Sprintf("error parsing left roster id: %v", err))
			return
		}
		right, err := strconv.Atoi(r.URL.Query().Get("right"))
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", fmt.Sprintf("error parsing right roster id: %v", err))
			return
		}

		comparison, err := ctrl.CompareRosters(r.Context(), left, right)
		if err != nil {
			if errors.Is(err, controller.ErrNoSession) {
				render.HTML(w, http.StatusNotFound, "404", "league is not loaded")
			} else {
				render.HTML(w, http.StatusBadRequest, "400", err.Error())
			}
			return
		}

		data := map[string]any{
			"session":    ctrl.ActiveSession(),
			"comparison": comparison,
			"version":    ctrl.ProjectionVersion(),
		}
		render.HTML(w, http.StatusOK, "compare", data)
	}
}

func playerSearchHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		var results []model.Player
		if query != "" {
			results = ctrl.SearchPlayers(query)
		}

		data := map[string]any{
			"q":       query,
			"results": results,
		}
		render.HTML(w, http.StatusOK, "playerSearch", data)
	}
}

// projectionsHandler is the polling endpoint behind the projection column.
// Pages request the ids they display and re-render when the version moves.
func projectionsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ids []string
		if param := r.URL.Query().Get("ids"); param != "" {
			ids = strings.Split(param, ",")
		}

		version, values := ctrl.ProjectionsFor(ids)
		render.JSON(w, http.StatusOK, map[string]any{
			"version":     version,
			"projections": values,
		})
	}
}
