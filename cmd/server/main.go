package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"crivo/internal/bureau"
	"crivo/internal/consulta/handler"
	"crivo/internal/platform/config"
	"crivo/internal/platform/httpserver"
	"crivo/internal/platform/logger"
	"crivo/internal/platform/metrics"
	"crivo/internal/platform/middleware"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	httpClient, err := bureau.NewHTTPClient(cfg.CertFile, cfg.KeyFile)
	if err != nil {
		log.Error("failed to load client certificate", "error", err.Error())
		os.Exit(1)
	}

	bureauCfg := bureau.Config{
		TokenURL:          cfg.TokenURL,
		BaseURL:           cfg.BureauBaseURL,
		ClientID:          cfg.ClientID,
		ClientSecret:      cfg.ClientSecret,
		Scope:             cfg.Scope,
		RequesterDocument: cfg.RequesterDocument,
		CorrelationHeader: cfg.CorrelationHeader,
	}
	tokens := bureau.NewTokenProvider(httpClient, bureauCfg, log, m)
	queries := bureau.NewQueryClient(httpClient, bureauCfg, log, m)

	h := handler.New(tokens, queries, log)

	router := chi.NewRouter()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(log))
	router.Use(middleware.Latency(m))
	router.Use(middleware.ContentTypeJSON)
	h.Register(router)
	router.Handle("/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting crivo", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err.Error())
		os.Exit(1)
	}
}
