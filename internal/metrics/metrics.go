// internal/metrics/metrics.go
//
// Prometheus instruments for the HTTP shell. Each Metrics owns its registry
// so several servers (and tests) can coexist in one process.

package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/robalobadob/cfgmaze/internal/generator"
	"github.com/robalobadob/cfgmaze/internal/grammar"
)

// Metrics groups every instrument the shell records.
type Metrics struct {
	reg *prometheus.Registry

	GamesStarted  *prometheus.CounterVec // mode: normal|daily
	GamesFinished prometheus.Counter
	PuzzlesBuilt  prometheus.Counter
	BuildFailures *prometheus.CounterVec // reason
	PuzzleLength  prometheus.Histogram
	Picks         *prometheus.CounterVec // result: correct|wrong
}

// New creates and registers all instruments on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		GamesStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cfgmaze_games_started_total",
			Help: "Games started, by mode.",
		}, []string{"mode"}),
		GamesFinished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cfgmaze_games_finished_total",
			Help: "Games played through their last trial.",
		}),
		PuzzlesBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cfgmaze_puzzles_built_total",
			Help: "Puzzles built successfully.",
		}),
		BuildFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cfgmaze_puzzle_build_failures_total",
			Help: "Failed puzzle builds, by reason.",
		}, []string{"reason"}),
		PuzzleLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cfgmaze_puzzle_words",
			Help:    "Words per built puzzle.",
			Buckets: prometheus.LinearBuckets(1, 2, 10),
		}),
		Picks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cfgmaze_picks_total",
			Help: "Learner picks, by result.",
		}, []string{"result"}),
	}
	m.reg.MustRegister(m.GamesStarted, m.GamesFinished, m.PuzzlesBuilt, m.BuildFailures, m.PuzzleLength, m.Picks)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// BuildFailed counts a failed build under a reason derived from err.
func (m *Metrics) BuildFailed(err error) {
	m.BuildFailures.WithLabelValues(Reason(err)).Inc()
}

// Pick counts one learner pick.
func (m *Metrics) Pick(correct bool) {
	if correct {
		m.Picks.WithLabelValues("correct").Inc()
		return
	}
	m.Picks.WithLabelValues("wrong").Inc()
}

// Reason maps a build error to a low-cardinality label.
func Reason(err error) string {
	switch {
	case errors.Is(err, generator.ErrDepthExceeded):
		return "depth_exceeded"
	case errors.Is(err, generator.ErrNoDistractor):
		return "no_distractor"
	case errors.Is(err, generator.ErrPuzzleTooLong):
		return "too_long"
	case errors.Is(err, grammar.ErrUnknownSymbol):
		return "unknown_symbol"
	}
	return "other"
}
