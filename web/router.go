package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/skjjcruz/owner-dashboard-v3/controller"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", rootHandler(ctrl, render))
	r.Post("/unlock", unlockHandler(ctrl, render))

	r.Route("/leagues", func(r chi.Router) {
		r.Get("/", leaguesHandler(ctrl, render))

		r.Route("/{leagueID:\\d+}", func(r chi.Router) {
			r.Post("/", loadLeagueHandler(ctrl, render))
			r.Get("/", getLeagueHandler(ctrl, render))
			r.Get("/compare", compareHandler(ctrl, render))
		})
	})

	r.Get("/players", playerSearchHandler(ctrl, render))
	r.Get("/projections", projectionsHandler(ctrl, render))

	return r
}
