package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/trisudoku/apps/go-server/internal/config"
	"github.com/robalobadob/trisudoku/apps/go-server/internal/httpserver"
	"github.com/robalobadob/trisudoku/apps/go-server/internal/level"
	"github.com/robalobadob/trisudoku/apps/go-server/internal/progress"
	"github.com/robalobadob/trisudoku/apps/go-server/internal/stats"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Parse()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	db, err := openDB(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	store := progress.NewSQLiteStore(db)
	levels := level.NewService(level.NewSource(cfg.LevelsDir))
	agg := stats.New(store)

	srv := httpserver.New(httpserver.Options{
		Levels:       levels,
		Store:        store,
		Stats:        agg,
		ClientOrigin: cfg.ClientOrigin,
		JWTSecret:    []byte(cfg.JWTSecret),
	})
	log.Info().Str("port", cfg.Port).Str("db", cfg.DBPath).Msg("starting trisudoku-go")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
