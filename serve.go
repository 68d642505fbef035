package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/cfgmaze/internal/httpserver"
	"github.com/robalobadob/cfgmaze/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve games over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBuilder(cmd.Context())
		if err != nil {
			return err
		}
		srv := httpserver.New(store.NewMemoryStore(store.WithTTL(cfg.TokenTTL)), b, httpserver.Options{
			Game:         cfg.Game,
			ClientOrigin: cfg.ClientOrigin,
			TokenSecret:  cfg.TokenSecret,
			TokenTTL:     cfg.TokenTTL,
			DailySalt:    cfg.DailySalt,
		})
		if cfg.TokenSecret == "dev_secret_change_me" {
			log.Warn().Msg("TOKEN_SECRET not set, using development secret")
		}
		log.Info().Str("port", cfg.Port).Msg("starting cfgmaze server")
		return srv.Start(":" + cfg.Port)
	},
}

func bindServeFlags() {
	serveCmd.Flags().StringVar(&cfg.Port, "port", cfg.Port, "HTTP port")
}
