// internal/httpserver/server.go
//
// HTTP shell for CFG Maze.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs,
//     access logging).
//   - Public endpoints: "/", "/health", "/debug/grammar", "/metrics".
//   - Game endpoints: POST /game/new, POST /game/pick, GET /game/state.
//   - Daily endpoint: POST /daily/new (mounted from routes_daily.go).
//
// Notes:
//   - Games live in the session store only; nothing is persisted. A game is
//     dropped from the store once its last round ends.
//   - A game is addressed by a signed token (Authorization: Bearer, or the
//     game cookie). See token.go.
//   - When a round ends and trials remain, the next round starts
//     immediately, as the original game did.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/cfgmaze/internal/generator"
	"github.com/robalobadob/cfgmaze/internal/metrics"
	"github.com/robalobadob/cfgmaze/internal/round"
	"github.com/robalobadob/cfgmaze/internal/store"
)

// buildAttempts bounds how many times a failed puzzle build is retried
// with fresh draws before the request fails.
const buildAttempts = 3

// Options configures a Server.
type Options struct {
	Game         round.Config
	ClientOrigin string
	TokenSecret  string
	TokenTTL     time.Duration
	DailySalt    string
	Now          func() time.Time // defaults to time.Now
	Metrics      *metrics.Metrics // defaults to a fresh registry
}

// Server bundles router, session store and puzzle builder.
type Server struct {
	r       *chi.Mux
	store   store.Store
	builder *generator.Builder
	opts    Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, b *generator.Builder, opts Options) *Server {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	s := &Server{r: chi.NewRouter(), store: st, builder: b, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                       // zerolog access log
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))         // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"cfgmaze","endpoints":["/health","POST /game/new","POST /game/pick","GET /game/state","POST /daily/new"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/grammar", s.handleDebugGrammar)
	s.r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())

	// --- game ---
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Group(func(r chi.Router) {
		r.Use(s.requireGame)
		r.Post("/game/pick", s.handlePick)
		r.Get("/game/state", s.handleState)
	})

	s.mountDaily(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})
	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------ GAME ---------------------------------------

// newGameRes is returned by /game/new and /daily/new.
type newGameRes struct {
	Token string         `json:"token"`
	Date  string         `json:"date,omitempty"`
	Game  round.Snapshot `json:"game"`
}

// handleNewGame starts a game with a fresh random seed.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	seed, err := generator.NewSeed()
	if err != nil {
		log.Error().Err(err).Msg("seed game")
		http.Error(w, `{"error":"seed_failed"}`, http.StatusInternalServerError)
		return
	}
	s.startGame(w, r, seed, "")
}

// startGame creates, stores and announces a game seeded with seed.
func (s *Server) startGame(w http.ResponseWriter, r *http.Request, seed uint64, date string) {
	g := round.NewGame(s.builder, generator.NewRand(seed), s.opts.Game)
	if err := s.startRound(g); err != nil {
		http.Error(w, `{"error":"build_failed"}`, http.StatusInternalServerError)
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	tok, exp, err := s.signToken(g.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign token")
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	s.setGameCookie(w, tok, exp)
	mode := "normal"
	if date != "" {
		mode = "daily"
	}
	s.opts.Metrics.GamesStarted.WithLabelValues(mode).Inc()
	log.Info().Str("gameId", g.ID).Str("date", date).Msg("game started")
	_ = json.NewEncoder(w).Encode(newGameRes{Token: tok, Date: date, Game: g.Snapshot()})
}

// startRound starts the next round that needs a pick. Rounds that end as
// soon as they start (every word revealed) are recorded and skipped.
func (s *Server) startRound(g *round.Game) error {
	for {
		if _, err := s.buildRound(g); err != nil {
			return err
		}
		if g.State() != round.StateRoundComplete {
			return nil
		}
	}
}

// buildRound builds one round, retrying failed builds with fresh draws.
func (s *Server) buildRound(g *round.Game) (*round.Round, error) {
	var (
		rd  *round.Round
		err error
	)
	for i := 0; i < buildAttempts; i++ {
		rd, err = g.NextRound()
		if err == nil {
			s.opts.Metrics.PuzzlesBuilt.Inc()
			s.opts.Metrics.PuzzleLength.Observe(float64(len(rd.Puzzle)))
			return rd, nil
		}
		if errors.Is(err, round.ErrGameOver) || errors.Is(err, round.ErrRoundInProgress) {
			return nil, err
		}
		s.opts.Metrics.BuildFailed(err)
		log.Warn().Err(err).Str("gameId", g.ID).Int("attempt", i+1).Msg("build puzzle")
	}
	log.Error().Err(err).Str("gameId", g.ID).Msg("build puzzle: giving up")
	return nil, err
}

// pickReq/Res payloads for POST /game/pick.
type pickReq struct {
	Pick string `json:"pick"`
}

// roundResult summarises a round that has just ended.
type roundResult struct {
	Solved    bool     `json:"solved"`
	Revealed  []string `json:"revealed"`
	Remaining []string `json:"remaining,omitempty"`
}

type pickRes struct {
	round.Outcome
	Result *roundResult   `json:"result,omitempty"` // set when the pick ended the round
	Game   round.Snapshot `json:"game"`
}

// handlePick applies a pick; when the round ends and trials remain, the
// next round is started before responding.
func (s *Server) handlePick(w http.ResponseWriter, r *http.Request) {
	g := gameFrom(r)
	var req pickReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	out, err := g.Submit(req.Pick)
	switch {
	case errors.Is(err, round.ErrInvalidPick):
		http.Error(w, `{"error":"invalid_pick"}`, http.StatusBadRequest)
		return
	case errors.Is(err, round.ErrRoundComplete), errors.Is(err, round.ErrNoRound):
		http.Error(w, `{"error":"no_active_round"}`, http.StatusConflict)
		return
	case err != nil:
		log.Error().Err(err).Str("gameId", g.ID).Msg("submit pick")
		http.Error(w, `{"error":"pick_failed"}`, http.StatusInternalServerError)
		return
	}

	s.opts.Metrics.Pick(out.Correct)
	res := pickRes{Outcome: out}
	if out.State == round.StateRoundComplete {
		snap := g.Snapshot()
		res.Result = &roundResult{Solved: snap.RoundSolved, Revealed: snap.Revealed, Remaining: snap.Remaining}
		if snap.State != round.StateGameOver {
			if err := s.startRound(g); err != nil {
				http.Error(w, `{"error":"build_failed"}`, http.StatusInternalServerError)
				return
			}
		}
		if g.State() == round.StateGameOver {
			s.finishGame(r, g)
		}
	}
	res.Game = g.Snapshot()
	_ = json.NewEncoder(w).Encode(res)
}

// finishGame records a finished game and drops it from the store; the
// final snapshot goes out with the pick that ended it.
func (s *Server) finishGame(r *http.Request, g *round.Game) {
	s.opts.Metrics.GamesFinished.Inc()
	solved, trials := g.Score()
	log.Info().Str("gameId", g.ID).Int("solved", solved).Int("trials", trials).Msg("game over")
	if err := s.store.Delete(r.Context(), g.ID); err != nil {
		log.Warn().Err(err).Str("gameId", g.ID).Msg("delete finished game")
	}
}

// handleState returns the game's current state.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(gameFrom(r).Snapshot())
}

// handleDebugGrammar reports grammar size and live game count.
func (s *Server) handleDebugGrammar(w http.ResponseWriter, r *http.Request) {
	syms, terms, bins := s.builder.Table.Stats()
	_ = json.NewEncoder(w).Encode(map[string]any{
		"start":      s.builder.Start,
		"symbols":    syms,
		"terminals":  terms,
		"binaries":   bins,
		"conflation": s.builder.Conflation.Len(),
		"games":      s.store.Len(),
	})
}
