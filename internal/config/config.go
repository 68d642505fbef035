// internal/config/config.go
//
// Environment-driven configuration.
//
// Variables (defaults in parentheses):
//   GRAMMAR_FILE     CSV grammar rows (embedded grammar)
//   GRAMMAR_DB       SQLite grammar database; wins over GRAMMAR_FILE
//   CONFLATION_FILE  YAML conflation table (embedded table)
//   START_SYMBOL     start symbol (S)
//   MAX_DEPTH        maximum expansion depth (200)
//   MAX_LENGTH       maximum words per puzzle, 0 = unbounded (0)
//   TRIALS_PER_GAME  rounds per game (20)
//   STOP_ON_MISTAKE  a wrong pick ends the round (true)
//   REVEAL_FIRST     the first word of each sentence is given (true)
//   PORT             HTTP port (5175)
//   CLIENT_ORIGIN    allowed CORS origin (http://localhost:5173)
//   TOKEN_SECRET     HMAC secret for game tokens (dev_secret_change_me)
//   TOKEN_TTL_HOURS  game token lifetime (24)
//   DAILY_SALT       salt for daily puzzle seeds (local_dev_salt)
//   LOG_LEVEL        zerolog level (info)
//
// A .env file in the working directory is loaded first when present;
// variables already set in the environment take precedence.

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/cfgmaze/internal/generator"
	"github.com/robalobadob/cfgmaze/internal/grammar"
	"github.com/robalobadob/cfgmaze/internal/round"
)

// Config is the resolved process configuration.
type Config struct {
	Grammar grammar.Source

	MaxDepth  int
	MaxLength int

	Game round.Config

	Port         string
	ClientOrigin string
	TokenSecret  string
	TokenTTL     time.Duration
	DailySalt    string
	LogLevel     string
}

// Load reads .env (if any) and the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("read .env")
	}
	return FromEnv()
}

// FromEnv reads the environment only.
func FromEnv() Config {
	return Config{
		Grammar: grammar.Source{
			File:           os.Getenv("GRAMMAR_FILE"),
			DB:             os.Getenv("GRAMMAR_DB"),
			ConflationFile: os.Getenv("CONFLATION_FILE"),
			Start:          grammar.Symbol(getEnv("START_SYMBOL", string(grammar.DefaultStart))),
		},
		MaxDepth:  envInt("MAX_DEPTH", generator.DefaultMaxDepth),
		MaxLength: envInt("MAX_LENGTH", 0),
		Game: round.Config{
			Trials:        envInt("TRIALS_PER_GAME", round.DefaultTrials),
			StopOnMistake: envBool("STOP_ON_MISTAKE", true),
			RevealFirst:   envBool("REVEAL_FIRST", true),
		},
		Port:         getEnv("PORT", "5175"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		TokenSecret:  getEnv("TOKEN_SECRET", "dev_secret_change_me"),
		TokenTTL:     time.Duration(envInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
		DailySalt:    getEnv("DAILY_SALT", "local_dev_salt"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

// GeneratorOptions returns the expansion limits as generator options.
func (c Config) GeneratorOptions() []generator.Option {
	return []generator.Option{generator.WithMaxDepth(c.MaxDepth), generator.WithMaxLength(c.MaxLength)}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		log.Warn().Str("var", k).Str("value", v).Msg("not an integer, using default")
		return def
	}
	return n
}

func envBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		log.Warn().Str("var", k).Str("value", v).Msg("not a boolean, using default")
		return def
	}
	return b
}
