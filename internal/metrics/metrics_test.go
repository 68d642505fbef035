package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/cfgmaze/internal/generator"
	"github.com/robalobadob/cfgmaze/internal/grammar"
)

func TestReason(t *testing.T) {
	assert.Equal(t, "depth_exceeded", Reason(fmt.Errorf("wrap: %w", generator.ErrDepthExceeded)))
	assert.Equal(t, "no_distractor", Reason(generator.ErrNoDistractor))
	assert.Equal(t, "too_long", Reason(generator.ErrPuzzleTooLong))
	assert.Equal(t, "unknown_symbol", Reason(&grammar.LookupError{Symbol: "X"}))
	assert.Equal(t, "other", Reason(errors.New("boom")))
}

func TestCounters(t *testing.T) {
	m := New()
	m.Pick(true)
	m.Pick(true)
	m.Pick(false)
	m.BuildFailed(generator.ErrNoDistractor)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Picks.WithLabelValues("correct")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Picks.WithLabelValues("wrong")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BuildFailures.WithLabelValues("no_distractor")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.GamesStarted.WithLabelValues("daily").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `cfgmaze_games_started_total{mode="daily"} 1`)
}
