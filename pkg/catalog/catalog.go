// Package catalog provides the list of IANA time zone identifiers that the
// resolver treats as valid answers.
package catalog

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	// Every catalog entry must load on hosts without a system zoneinfo tree.
	_ "time/tzdata"
)

//go:embed data/zones.txt
var dataFS embed.FS

const defaultListPath = "data/zones.txt"

var (
	defaultOnce  sync.Once
	defaultZones []string
	defaultIndex map[string]struct{}
	defaultErr   error
)

func loadDefault() {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultListPath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		zones, err := Parse(f)
		if err != nil {
			defaultErr = err
			return
		}
		defaultZones = zones
		defaultIndex = make(map[string]struct{}, len(zones))
		for _, z := range zones {
			defaultIndex[z] = struct{}{}
		}
	})
}

// Zones returns a sorted copy of the embedded catalog.
// It panics if the embedded list is unreadable, which only happens on a broken build.
func Zones() []string {
	loadDefault()
	if defaultErr != nil {
		panic(fmt.Sprintf("catalog: embedded zone list: %v", defaultErr))
	}
	return append([]string{}, defaultZones...)
}

// Contains reports whether id is exactly a catalog identifier.
func Contains(id string) bool {
	loadDefault()
	_, ok := defaultIndex[id]
	return ok
}

// Parse reads one identifier per line, skipping blanks, comments and duplicates.
// The result is sorted so iteration order is stable.
func Parse(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, errors.New("catalog: missing reader")
	}

	scanner := bufio.NewScanner(r)
	zones := make([]string, 0, 600)
	seen := map[string]struct{}{}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		zones = append(zones, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("catalog: reading zone list: %w", err)
	}

	sort.Strings(zones)
	return zones, nil
}
