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

	"family-care/internal/adapters/auth/token"
	"family-care/internal/adapters/storage"
	"family-care/internal/adapters/storage/sqlstore"
	"family-care/internal/platform/config"
	"family-care/internal/platform/logger"
	"family-care/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level := logger.ParseLevel(cfg.LogLevel)
	format := logger.ParseFormat(cfg.LogFormat)
	log := logger.New(logger.Options{
		Level:  level,
		Format: format,
		App:    cfg.AppName,
		File:   cfg.LogFile,
	})
	if zl, ok := log.(*logger.ZapLogger); ok {
		defer func() { _ = zl.Sync() }()
	}
	log.Info("logger ready", map[string]any{"level": level.String(), "format": string(format)})

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", map[string]any{"err": err})
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	var st *storage.Store // nil => in-memory
	if cfg.DBDriver != config.DriverMemory {
		db, err := sqlstore.Open(sqlstore.Dialect(cfg.DBDriver), cfg.DBDSN, log)
		if err != nil {
			return fmt.Errorf("open %s: %w", cfg.DBDriver, err)
		}
		defer db.Close()
		st = sqlstore.NewStore(db)
	}

	secret := cfg.JWTSecret
	if secret == "" {
		s, err := token.RandomSecret()
		if err != nil {
			return fmt.Errorf("generate token secret: %w", err)
		}
		secret = s
		log.Warn("JWT_SECRET not set; using an ephemeral secret", nil)
	}
	iss, err := token.NewIssuer(secret, cfg.TokenTTL)
	if err != nil {
		return err
	}

	r := router.NewRouter(router.Options{
		AuthVerifier:      iss,
		TokenIssuer:       iss,
		Store:             st,
		Logger:            log,
		AdminEmails:       cfg.AdminEmails,
		CORSOrigins:       cfg.CORSOrigins,
		LoginRateLimit:    cfg.LoginRateLimit,
		TrustProxyHeaders: cfg.TrustProxyHeaders,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "db_driver": cfg.DBDriver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", map[string]any{"signal": sig.String()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
