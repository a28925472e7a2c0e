package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	apphttp "github.com/amakane-hakari/capset/internal/api/http"
	"github.com/amakane-hakari/capset/internal/capset"
	ilog "github.com/amakane-hakari/capset/internal/log"
	"github.com/amakane-hakari/capset/internal/metrics"
)

func main() {
	// .env は任意。無ければ環境変数のみで動く。
	_ = godotenv.Load()

	logger := ilog.New()

	addr := getEnv("CAPSET_HTTP_ADDR", ":8080")
	capacity, err := strconv.Atoi(getEnv("CAPSET_CAPACITY", "100"))
	if err != nil {
		logger.Error("invalid CAPSET_CAPACITY", "err", err)
		os.Exit(1)
	}

	var m metrics.Interface = metrics.Noop{}
	if getEnv("CAPSET_METRICS", "prom") == "prom" {
		m = metrics.NewProm("capset")
	}

	set, err := capset.New(capacity,
		capset.WithLogger(logger),
		capset.WithMetrics(m),
	)
	if err != nil {
		logger.Error("failed to construct set", "capacity", capacity, "err", err)
		os.Exit(1)
	}

	router := apphttp.NewRouter(capset.NewSynced(set), logger)

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", "addr", addr, "capacity", capacity)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "err", err)
	}

	apphttp.SetDraining(true)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "err", err)
	} else {
		logger.Info("server stopped")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
