package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/codeGROOVE-dev/whattime/pkg/whattime"
)

func TestPrintReport(t *testing.T) {
	color.NoColor = true

	resolved := whattime.Report{
		Status:    "resolved",
		Timezone:  "America/Phoenix",
		Spoken:    "Phoenix America",
		Time:      "16:30",
		Offset:    "UTC-7",
		Weekday:   "Wednesday",
		MonthDate: "June 14",
		Date:      "6/14/2017",
		Strategy:  "direct",
		Score:     1,
	}

	tests := []struct {
		name    string
		rep     whattime.Report
		opts    printOptions
		want    []string
		notWant []string
	}{
		{
			name:    "resolved",
			rep:     resolved,
			want:    []string{"Phoenix America", "16:30", "America/Phoenix (UTC-7)"},
			notWant: []string{"Date:", "Faceplate"},
		},
		{
			name: "with date and faceplate",
			rep:  resolved,
			opts: printOptions{date: true, faceplate: true},
			want: []string{"Wednesday, June 14 (6/14/2017)", "DIECODAC@7", "BIEB@15", "DIODCCOD@21"},
		},
		{
			name: "needs confirmation",
			rep:  whattime.Report{Status: "needs_confirmation", Timezone: "America/Los_Angeles", Prompt: "Did you mean Los Angeles America?"},
			want: []string{"Did you mean Los Angeles America?", "--yes"},
		},
		{
			name: "not found",
			rep:  whattime.Report{Status: "not_found", Query: "atlantis"},
			want: []string{`"atlantis"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printReport(&buf, tt.rep, tt.opts)
			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out, w) {
					t.Errorf("output unexpectedly contains %q:\n%s", w, out)
				}
			}
		})
	}
}
