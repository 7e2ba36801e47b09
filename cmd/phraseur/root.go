package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aperrault/phraseur/internal/config"
	"github.com/aperrault/phraseur/internal/generation"
	"github.com/aperrault/phraseur/internal/platform/gemini"
	"github.com/aperrault/phraseur/internal/platform/logger"
	"github.com/aperrault/phraseur/internal/platform/postgres"
	"github.com/aperrault/phraseur/internal/platform/rediscache"
	"github.com/aperrault/phraseur/internal/service"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "phraseur",
	Short: "Generate and manage French practice sentences",
	Long: `phraseur generates French practice sentences by prompting a language
model, persists verbs, conjugations and sentences in Postgres, and serves
them over a small HTTP API.

Configuration is read from environment variables with the PHRASEUR_ prefix
(e.g. PHRASEUR_DATABASE_URL, PHRASEUR_LLM_GEMINI_API_KEY) and optionally
from a config file.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to config file (default: ./config.yaml)")
}

// app bundles the wired dependencies shared by the subcommands.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	db        *sql.DB
	cache     *rediscache.Cache
	generator generation.Generator
	verbs     service.VerbService
	sentences service.SentenceService
	problems  service.ProblemService
}

// newApp loads configuration and wires the full dependency graph. The cache
// is optional: when disabled the services read straight through to Postgres.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)

	db, err := postgres.Open(ctx, cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	var cache *rediscache.Cache
	if cfg.Cache.Enabled {
		cache, err = rediscache.New(ctx, cfg.Cache.RedisURL, log)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
	}

	generator, err := gemini.NewGeminiGenerator(ctx, log, cfg.LLM)
	if err != nil {
		_ = db.Close()
		if cache != nil {
			_ = cache.Close()
		}
		return nil, fmt.Errorf("failed to initialize generator: %w", err)
	}

	verbStore := postgres.NewPostgresVerbStore(db, log)
	conjugationStore := postgres.NewPostgresConjugationStore(db, log)
	sentenceStore := postgres.NewPostgresSentenceStore(db, log)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var verbCache service.VerbCache
	if cache != nil {
		verbCache = cache
	}

	sentences := service.NewSentenceService(generator, sentenceStore, verbStore, rng, log)
	verbs := service.NewVerbService(generator, verbStore, conjugationStore, verbCache, log)
	problems := service.NewProblemService(sentences, verbStore, rng, log)

	return &app{
		cfg:       cfg,
		logger:    log,
		db:        db,
		cache:     cache,
		generator: generator,
		verbs:     verbs,
		sentences: sentences,
		problems:  problems,
	}, nil
}

// close releases the app's connections.
func (a *app) close() {
	if a.cache != nil {
		_ = a.cache.Close()
	}
	_ = a.db.Close()
}

// printJSON renders a command result to stdout.
func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(out))
	return err
}
