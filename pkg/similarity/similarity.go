// Package similarity exposes normalized string similarity functions for the
// fuzzy zone matcher. Every function returns a score in [0,1], 1 meaning equal.
package similarity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Func scores how close a is to b.
type Func func(a, b string) float64

// Default is the metric used when none is configured.
const Default = "levenshtein"

var registry = map[string]func() strutil.StringMetric{
	"levenshtein": func() strutil.StringMetric {
		m := metrics.NewLevenshtein()
		m.CaseSensitive = false
		return m
	},
	"jaro-winkler": func() strutil.StringMetric {
		m := metrics.NewJaroWinkler()
		m.CaseSensitive = false
		return m
	},
	"smith-waterman-gotoh": func() strutil.StringMetric {
		m := metrics.NewSmithWatermanGotoh()
		m.CaseSensitive = false
		return m
	},
	"sorensen-dice": func() strutil.StringMetric {
		m := metrics.NewSorensenDice()
		m.CaseSensitive = false
		return m
	},
}

// Names lists the registered metric names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName returns the named metric as a Func.
func ByName(name string) (Func, error) {
	build, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown similarity metric %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	metric := build()
	return func(a, b string) float64 {
		return clamp(strutil.Similarity(a, b, metric))
	}, nil
}

// Levenshtein is the edit distance similarity, 1 - distance/maxLen.
func Levenshtein(a, b string) float64 {
	return levenshtein(a, b)
}

var levenshtein = mustByName(Default)

func mustByName(name string) Func {
	f, err := ByName(name)
	if err != nil {
		panic(err)
	}
	return f
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
