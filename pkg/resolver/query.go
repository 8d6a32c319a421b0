package resolver

import (
	"strings"

	"github.com/codeGROOVE-dev/whattime/pkg/geo"
)

// Query is the location a user asked about: either free text as heard
// ("los angeles time") or a structured place hint.
type Query struct {
	text  string
	place geo.Place
}

// Text builds a free-text query.
func Text(s string) Query {
	return Query{text: s}
}

// Structured builds a query from a city with optional state and country.
func Structured(p geo.Place) Query {
	return Query{place: p}
}

// IsStructured reports whether the query came from a place hint.
func (q Query) IsStructured() bool {
	return q.text == "" && !q.place.IsZero()
}

// Raw returns the free text exactly as given; empty for structured queries.
func (q Query) Raw() string {
	return q.text
}

// Place returns the query as a place hint. Free text is split on commas
// after filler words like "time" are removed.
func (q Query) Place() geo.Place {
	if q.IsStructured() {
		return q.place
	}
	return geo.ParsePlace(stripFiller(normalize(q.text)))
}

// IsEmpty reports whether the query has nothing to resolve.
func (q Query) IsEmpty() bool {
	return strings.TrimSpace(q.text) == "" && q.place.IsZero()
}

func (q Query) String() string {
	if q.IsStructured() {
		return q.place.String()
	}
	return q.text
}

// phrases returns the normalized forms tried against exact tables, most
// specific first: the full phrase, then the phrase without filler words.
func (q Query) phrases() []string {
	var full string
	if q.IsStructured() {
		full = normalize(strings.Join(append([]string{q.place.City}, q.place.Qualifiers()...), " "))
	} else {
		full = normalize(strings.ReplaceAll(q.text, ",", " "))
	}
	out := []string{full}
	if stripped := stripFiller(full); stripped != "" && stripped != full {
		out = append(out, stripped)
	}
	return out
}

// spoken returns the lowercase phrase used for fuzzy matching.
func (q Query) spoken() string {
	p := q.phrases()
	return p[len(p)-1]
}

// normalize lowercases, collapses whitespace and trims sentence punctuation.
func normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.Trim(s, " \t\r\n.!?;:\"'")
	return strings.Join(strings.Fields(s), " ")
}

var fillerSuffixes = [][]string{
	{"time", "zone"},
	{"timezone"},
	{"time"},
}

// stripFiller removes trailing words that name the question rather than the
// place: "los angeles time" and "pacific time zone" lose "time" and "time zone".
func stripFiller(s string) string {
	words := strings.Fields(s)
	for _, suffix := range fillerSuffixes {
		if len(words) <= len(suffix) {
			continue
		}
		tail := words[len(words)-len(suffix):]
		if equalWords(tail, suffix) {
			words = words[:len(words)-len(suffix)]
			break
		}
	}
	return strings.Join(words, " ")
}

func equalWords(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
