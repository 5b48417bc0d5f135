package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/scramble/apps/go-server/internal/config"
	"github.com/robalobadob/scramble/apps/go-server/internal/dictionary"
	"github.com/robalobadob/scramble/apps/go-server/internal/httpserver"
	"github.com/robalobadob/scramble/apps/go-server/internal/store"
	"github.com/robalobadob/scramble/apps/go-server/internal/words"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg)

	list, err := words.Load(cfg.RootWordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load root words")
	}
	src, err := words.NewSource(list)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load root words")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	dict, err := dictionary.Open(ctx, dictionary.Options{
		Backend:       cfg.DictionaryBackend,
		File:          cfg.DictionaryFile,
		Locale:        cfg.DictionaryLocale,
		Seed:          cfg.DictionarySeed,
		Fallback:      cfg.DictionaryFallback,
		DSN:           cfg.DictionaryDSN,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
		RedisPrefix:   cfg.RedisPrefix,
	})
	cancel()
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.DictionaryBackend).Msg("failed to open dictionary")
	}
	defer func() { _ = dict.Close() }()

	log.Info().
		Int("roots", src.Len()).
		Str("dictionary", cfg.DictionaryBackend).
		Str("locale", cfg.DictionaryLocale).
		Str("scoreMode", cfg.ScoreMode).
		Msg("word lists ready")

	srv := httpserver.New(httpserver.Deps{
		Store:           store.NewMemoryStore(),
		Words:           src,
		Dictionary:      dict,
		DictionaryCount: dict.Count,
		Config:          cfg,
	})
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go srv.RunSweeper(sweepCtx, cfg.SweepInterval)

	log.Info().Str("port", cfg.Port).Msg("starting go-server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// setupLogging applies LOG_LEVEL and LOG_FORMAT to the global logger.
func setupLogging(cfg config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFormat == "console" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	}
}
