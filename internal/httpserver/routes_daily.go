// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily puzzle mode.
//   - POST /daily/new → start a game seeded from today's date
//
// Every daily game started on the same UTC date plays the same sequence of
// puzzles. Results are not recorded.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/cfgmaze/internal/daily"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", s.handleDailyNew)
	})
}

// handleDailyNew starts a game whose seed is derived from the current date.
func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	now := s.opts.Now()
	s.startGame(w, r, daily.Seed(now, s.opts.DailySalt), daily.DateKey(now))
}
