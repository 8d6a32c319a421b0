package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/codeGROOVE-dev/whattime/pkg/similarity"
)

// Thresholds split fuzzy scores into bands: above Accept a guess is used
// directly, above Confirm it is confirmed with the user, otherwise dropped.
type Thresholds struct {
	Accept  float64
	Confirm float64
}

// DefaultThresholds were tuned against difflib-style ratios and hold up for
// Levenshtein similarity. Recalibrate them when switching metrics.
var DefaultThresholds = Thresholds{Accept: 0.8, Confirm: 0.3}

// Validate checks 0 <= Confirm <= Accept <= 1.
func (t Thresholds) Validate() error {
	if t.Confirm < 0 || t.Accept > 1 {
		return fmt.Errorf("thresholds must lie in [0,1], got accept=%v confirm=%v", t.Accept, t.Confirm)
	}
	if t.Confirm > t.Accept {
		return errors.New("confirm threshold exceeds accept threshold")
	}
	return nil
}

// Band returns the status a score falls into.
func (t Thresholds) Band(score float64) Status {
	switch {
	case score > t.Accept:
		return Resolved
	case score > t.Confirm:
		return NeedsConfirmation
	default:
		return NotFound
	}
}

type fuzzyEntry struct {
	zone  string
	forms []string
}

// FuzzyStrategy compares the spoken text with the trailing components of
// every catalog zone name.
type FuzzyStrategy struct {
	entries    []fuzzyEntry
	similarity similarity.Func
	thresholds Thresholds
	logger     *slog.Logger
}

// NewFuzzyStrategy precomputes the comparable forms of zones. The order of
// zones decides ties: the first best score wins.
func NewFuzzyStrategy(zones []string, sim similarity.Func, t Thresholds, logger *slog.Logger) *FuzzyStrategy {
	if sim == nil {
		sim = similarity.Levenshtein
	}
	if logger == nil {
		logger = slog.Default()
	}
	entries := make([]fuzzyEntry, 0, len(zones))
	for _, z := range zones {
		entries = append(entries, fuzzyEntry{zone: z, forms: zoneForms(z)})
	}
	return &FuzzyStrategy{entries: entries, similarity: sim, thresholds: t, logger: logger}
}

// zoneForms lists the phrasings a user might say for a zone:
// "America/North_Dakota/Center" gives "center", "center north dakota" and
// "north dakota center".
func zoneForms(zone string) []string {
	parts := strings.Split(strings.ToLower(zone), "/")
	for i := range parts {
		parts[i] = strings.ReplaceAll(parts[i], "_", " ")
	}
	last := parts[len(parts)-1]
	if len(parts) == 1 {
		return []string{last}
	}
	prev := parts[len(parts)-2]
	return []string{last, last + " " + prev, prev + " " + last}
}

// Name implements Strategy.
func (*FuzzyStrategy) Name() string { return "fuzzy" }

// Best returns the highest scoring zone for text, keeping the first on ties.
func (s *FuzzyStrategy) Best(text string) Candidate {
	text = strings.ToLower(text)
	var best Candidate
	for _, e := range s.entries {
		score := 0.0
		for _, form := range e.forms {
			if v := s.similarity(text, form); v > score {
				score = v
			}
		}
		if score > best.Score {
			best = Candidate{Zone: e.zone, Score: score}
		}
	}
	return best
}

// Lookup implements Strategy.
func (s *FuzzyStrategy) Lookup(_ context.Context, q Query) (Outcome, bool) {
	text := q.spoken()
	if text == "" {
		return Outcome{}, false
	}
	best := s.Best(text)
	status := s.thresholds.Band(best.Score)
	s.logger.Debug("fuzzy best match", "query", text, "timezone", best.Zone, "score", best.Score, "band", status)

	switch status {
	case Resolved:
		return Outcome{Status: Resolved, Zone: best.Zone, Strategy: s.Name(), Score: best.Score}, true
	case NeedsConfirmation:
		return Outcome{
			Status:   NeedsConfirmation,
			Zone:     best.Zone,
			Spoken:   Speakable(best.Zone),
			Strategy: s.Name(),
			Score:    best.Score,
		}, true
	default:
		return Outcome{}, false
	}
}
