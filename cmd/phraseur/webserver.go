package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aperrault/phraseur/internal/api"
)

const shutdownTimeout = 15 * time.Second

var webserverCmd = &cobra.Command{
	Use:   "webserver",
	Short: "Run the HTTP API",
}

var webserverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP API and block until interrupted",
	RunE:  runWebserverStart,
}

func init() {
	webserverCmd.AddCommand(webserverStartCmd)
	rootCmd.AddCommand(webserverCmd)
}

func runWebserverStart(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	var cache api.CacheStatsProvider
	if a.cache != nil {
		cache = a.cache
	}

	router := api.NewRouter(api.RouterDeps{
		APIKey:    a.cfg.Server.APIKey,
		Sentences: a.sentences,
		Verbs:     a.verbs,
		Problems:  a.problems,
		Cache:     cache,
		Logger:    a.logger,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", a.cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		a.logger.Info("starting server", slog.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		a.logger.Info("shutting down server", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	a.logger.Info("server stopped")
	return nil
}
