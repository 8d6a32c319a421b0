package resolver

import (
	"regexp"
	"strings"
)

var camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)

// Speakable renders a zone identifier in the order a person would say it:
// "America/North_Dakota/Center" becomes "Center North Dakota America" and
// joined words like "EasterIsland" become "Easter Island".
func Speakable(zone string) string {
	say := camelBoundary.ReplaceAllString(zone, "${1} ${2}")
	say = strings.ReplaceAll(say, "_", " ")
	parts := strings.Split(say, "/")
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, " ")
}
