// Package aliases loads the localized tables that map colloquial zone names
// ("pacific time", "china") to IANA time zone identifiers.
package aliases

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/codeGROOVE-dev/whattime/pkg/catalog"
)

//go:embed data/*.yaml
var dataFS embed.FS

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "en-us"

// ErrUnknownLanguage is returned when no embedded table matches a language tag.
var ErrUnknownLanguage = errors.New("no alias table for language")

// Table maps lowercase aliases to time zone identifiers. It is never modified
// after loading and may be shared between goroutines.
type Table map[string]string

// Lookup returns the zone for alias, ignoring case and repeated whitespace.
func (t Table) Lookup(alias string) (string, bool) {
	zone, ok := t[Key(alias)]
	return zone, ok
}

// Key normalizes an alias the same way table keys are normalized.
func Key(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

type document struct {
	Language string            `yaml:"language"`
	Aliases  map[string]string `yaml:"aliases"`
}

// Parse decodes a YAML alias document. Every target must be a catalog zone,
// and a key spelling a catalog abbreviation such as EST or GMT must point at
// that abbreviation: aliases are consulted first and would otherwise replace
// a fixed-offset code with a zone that observes daylight saving time.
func Parse(r io.Reader) (Table, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding alias table: %w", err)
	}

	codes := abbreviations()
	table := make(Table, len(doc.Aliases))
	for alias, zone := range doc.Aliases {
		if !catalog.Contains(zone) {
			return nil, fmt.Errorf("alias %q: unknown time zone %q", alias, zone)
		}
		key := Key(alias)
		if key == "" {
			continue
		}
		if code, ok := codes[key]; ok && code != zone {
			return nil, fmt.Errorf("alias %q: shadows time zone code %q with %q", alias, code, zone)
		}
		table[key] = zone
	}
	return table, nil
}

// abbreviations indexes the catalog identifiers written in capitals
// (EST, GMT, MST7MDT) by their alias key.
func abbreviations() map[string]string {
	codes := map[string]string{}
	for _, id := range catalog.Zones() {
		if strings.Contains(id, "/") || strings.ToUpper(id) != id {
			continue
		}
		codes[Key(id)] = id
	}
	return codes
}

// Languages lists the embedded table languages in sorted order.
func Languages() []string {
	entries, err := fs.ReadDir(dataFS, "data")
	if err != nil {
		return nil
	}
	var langs []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		langs = append(langs, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(langs)
	return langs
}

// Load returns the embedded table for lang. Tags are matched case-insensitively
// with "_" treated as "-"; "en" or "en-gb" fall back to the first "en-*" table.
func Load(lang string) (Table, error) {
	tag := normalizeTag(lang)
	if tag == "" {
		tag = DefaultLanguage
	}

	name, ok := match(tag, Languages())
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}

	f, err := dataFS.Open(path.Join("data", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("opening alias table %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	table, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("alias table %s: %w", name, err)
	}
	return table, nil
}

func normalizeTag(lang string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(lang)), "_", "-")
}

func match(tag string, available []string) (string, bool) {
	for _, l := range available {
		if l == tag {
			return l, true
		}
	}
	primary, _, _ := strings.Cut(tag, "-")
	for _, l := range available {
		if p, _, _ := strings.Cut(l, "-"); p == primary {
			return l, true
		}
	}
	return "", false
}
