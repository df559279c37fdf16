/*
Package main is the entry point for the user directory service.

It loads configuration, initializes the global logger, builds the in-memory user
store and its id generator, serves the HTTP routes and shuts the server down
gracefully on SIGINT or SIGTERM.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"userdir/internal/app/user"
	"userdir/internal/configs"
	"userdir/internal/handler"
	"userdir/internal/pkg/logx"
)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logx.InitGlobalLogger(cfg.IsDevelopment())
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Str("addr", cfg.Addr()).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Str("user_id_scheme", cfg.UserIDScheme).
		Msg("Configuration loaded successfully")

	if cfg.TokenSecret == configs.DefaultTokenSecret && !cfg.IsDevelopment() {
		logx.Warn("TOKEN_SECRET is the built-in default; set it before exposing the service")
	}

	ids, err := user.NewIDGenerator(cfg.UserIDScheme)
	if err != nil {
		logx.Fatal(err, "Invalid user id scheme")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := handler.NewAppDeps(cfg, user.NewStore(), ids)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler.Router(deps),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("User directory starting on http://%s", cfg.Addr()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Fatal(err, "Server forced to shutdown")
	}

	logx.Info("Server gracefully stopped.")
}
