// Package main implements the whattime web server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codeGROOVE-dev/whattime/pkg/clock"
	"github.com/codeGROOVE-dev/whattime/pkg/similarity"
	"github.com/codeGROOVE-dev/whattime/pkg/whattime"
)

var (
	port         = flag.String("port", "8080", "Port for web server (or set PORT)")
	lang         = flag.String("lang", "", "Default alias table language (or set WHATTIME_LANG)")
	mapsAPIKey   = flag.String("maps-key", "", "Google Maps API key (or set GOOGLE_MAPS_API_KEY)")
	mapsAttempts = flag.Uint("maps-attempts", 1, "Attempts per Google Maps request on server errors")
	cacheTTL     = flag.Duration("cache-ttl", 12*time.Hour, "How long Google Maps responses are cached")
	metric       = flag.String("similarity", similarity.Default, "Fuzzy metric")
	timeFormat   = flag.String("format", "24h", "Time format: 24h, 12h or ampm")
	dateOrder    = flag.String("date-order", "MDY", "Date order: MDY, DMY or YMD")
	rateLimit    = flag.Int("rate-limit", 60, "Requests per minute per client IP")
	rateClients  = flag.Int("rate-clients", 100_000, "Most client IPs tracked by the rate limiter")
	verbose      = flag.Bool("verbose", false, "Enable verbose logging")
	version      = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Println("whattime Server v1.0.0")
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if p := os.Getenv("PORT"); p != "" && *port == "8080" {
		*port = p
	}
	if *lang == "" {
		*lang = os.Getenv("WHATTIME_LANG")
	}
	if *mapsAPIKey == "" {
		*mapsAPIKey = os.Getenv("GOOGLE_MAPS_API_KEY")
	}

	format, err := clock.ParseFormat(*timeFormat)
	if err != nil {
		logger.Error("Invalid time format", "error", err)
		os.Exit(1)
	}
	order, err := clock.ParseDateOrder(*dateOrder)
	if err != nil {
		logger.Error("Invalid date order", "error", err)
		os.Exit(1)
	}

	logger.Info("Server configuration",
		"port", *port,
		"verbose", *verbose,
		"language", *lang,
		"similarity", *metric,
		"rate_limit", *rateLimit,
		"rate_clients", *rateClients,
		"has_maps_key", *mapsAPIKey != "")

	svc, err := whattime.NewWithLogger(logger,
		whattime.WithLanguage(*lang),
		whattime.WithSimilarity(*metric),
		whattime.WithMapsAPIKey(*mapsAPIKey),
		whattime.WithMapsAttempts(*mapsAttempts),
		whattime.WithCacheTTL(*cacheTTL),
		whattime.WithTimeFormat(format),
		whattime.WithDateOrder(order),
	)
	if err != nil {
		logger.Error("Failed to build time service", "error", err)
		os.Exit(1)
	}

	s := &server{
		svc:     svc,
		limiter: newRateLimiter(*rateLimit, *rateClients),
		logger:  logger,
	}

	srv := &http.Server{
		Addr:              ":" + *port,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", *port)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown failed", "error", err)
	}
	logger.Info("Server stopped", "cached_responses", svc.CachedResponses())
}
