// Package main implements the whattime CLI: what time is it in a given place.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/codeGROOVE-dev/whattime/pkg/aliases"
	"github.com/codeGROOVE-dev/whattime/pkg/clock"
	"github.com/codeGROOVE-dev/whattime/pkg/geo"
	"github.com/codeGROOVE-dev/whattime/pkg/resolver"
	"github.com/codeGROOVE-dev/whattime/pkg/similarity"
	"github.com/codeGROOVE-dev/whattime/pkg/whattime"
)

var (
	lang         = flag.String("lang", "", "Alias table language, e.g. en-us, de-de (or set WHATTIME_LANG)")
	aliasFile    = flag.String("aliases", "", "YAML file with extra aliases, replacing the language table")
	mapsAPIKey   = flag.String("maps-key", "", "Google Maps API key (or set GOOGLE_MAPS_API_KEY)")
	mapsAttempts = flag.Uint("maps-attempts", 1, "Attempts per Google Maps request on server errors")
	offline      = flag.Bool("offline", false, "Skip geocoding entirely")
	metric       = flag.String("similarity", similarity.Default, "Fuzzy metric: "+strings.Join(similarity.Names(), ", "))
	accept       = flag.Float64("accept", resolver.DefaultThresholds.Accept, "Fuzzy score above which a guess is used without asking")
	confirm      = flag.Float64("confirm", resolver.DefaultThresholds.Confirm, "Fuzzy score above which a guess is offered for confirmation")
	timeFormat   = flag.String("format", "24h", "Time format: 24h, 12h or ampm (or set WHATTIME_FORMAT)")
	dateOrder    = flag.String("date-order", "MDY", "Date order: MDY, DMY or YMD")
	showDate     = flag.Bool("date", false, "Also print the date and weekday")
	state        = flag.String("state", "", "State or region qualifier for the location")
	country      = flag.String("country", "", "Country qualifier for the location")
	showFace     = flag.Bool("faceplate", false, "Print Mark 1 faceplate draw codes for the time")
	assumeYes    = flag.Bool("yes", false, "Accept low-confidence guesses without asking")
	verbose      = flag.Bool("verbose", false, "Enable verbose logging")
	version      = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Println("whattime CLI v1.0.0")
		return
	}

	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	if *lang == "" {
		*lang = os.Getenv("WHATTIME_LANG")
	}
	if *mapsAPIKey == "" {
		*mapsAPIKey = os.Getenv("GOOGLE_MAPS_API_KEY")
	}
	if v := os.Getenv("WHATTIME_FORMAT"); v != "" && !flagSet("format") {
		*timeFormat = v
	}

	format, err := clock.ParseFormat(*timeFormat)
	if err != nil {
		fail(err)
	}
	order, err := clock.ParseDateOrder(*dateOrder)
	if err != nil {
		fail(err)
	}

	opts := []whattime.Option{
		whattime.WithLanguage(*lang),
		whattime.WithSimilarity(*metric),
		whattime.WithThresholds(*accept, *confirm),
		whattime.WithTimeFormat(format),
		whattime.WithDateOrder(order),
		whattime.WithMapsAPIKey(*mapsAPIKey),
		whattime.WithMapsAttempts(*mapsAttempts),
	}
	if *offline {
		opts = append(opts, whattime.WithOffline())
	}
	if *aliasFile != "" {
		table, err := loadAliases(*aliasFile)
		if err != nil {
			fail(err)
		}
		opts = append(opts, whattime.WithAliases(table))
	}

	svc, err := whattime.NewWithLogger(logger, opts...)
	if err != nil {
		fail(err)
	}

	display := printOptions{date: *showDate, faceplate: *showFace, verbose: *verbose}

	location := strings.Join(flag.Args(), " ")
	if strings.TrimSpace(location) == "" {
		printReport(os.Stdout, svc.Local(), display)
		return
	}

	q := resolver.Text(location)
	if *state != "" || *country != "" {
		q = resolver.Structured(geo.Place{City: location, State: *state, Country: *country})
	}

	var confirmer resolver.Confirmer
	switch {
	case *assumeYes:
		confirmer = resolver.Answer("yes")
	case isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()):
		confirmer = surveyConfirmer{}
	default:
		logger.Debug("stdin is not a terminal, not prompting")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	rep, err := svc.Lookup(ctx, "", q, confirmer)
	if err != nil {
		cancel()
		fail(err)
	}
	printReport(os.Stdout, rep, display)
	if rep.Status != resolver.Resolved.String() {
		cancel()
		os.Exit(1)
	}
}

func loadAliases(path string) (aliases.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening alias file: %w", err)
	}
	defer func() { _ = f.Close() }()
	table, err := aliases.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("alias file %s: %w", path, err)
	}
	return table, nil
}

func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func fail(err error) {
	errColor.Fprintf(os.Stderr, "whattime: %v\n", err)
	os.Exit(2)
}
