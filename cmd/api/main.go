// Package main starts an HTTP server that accepts raw bundler stats and
// returns the normalized bundle model and drill-down hierarchy. It wires
// the internal handlers behind a CORS middleware and JSON responses.
package main

import (
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bundlescope/core/cmd/api/middleware"
	"github.com/bundlescope/core/internal/handlers"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	mux := http.NewServeMux()
	mux.HandleFunc("/health", handlers.HealthHandler)
	mux.HandleFunc("/analyze", handlers.AnalyzeHandler)

	addr := ":" + getEnv("PORT", "8080")
	log.Info().Str("addr", addr).Msg("server starting")

	if err := http.ListenAndServe(addr, middleware.Cors(mux)); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
