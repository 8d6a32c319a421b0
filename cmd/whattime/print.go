package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/codeGROOVE-dev/whattime/pkg/faceplate"
	"github.com/codeGROOVE-dev/whattime/pkg/whattime"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	timeColor   = color.New(color.FgGreen, color.Bold)
	dimColor    = color.New(color.FgHiBlack)
	warnColor   = color.New(color.FgYellow)
	errColor    = color.New(color.FgRed)
)

type printOptions struct {
	date      bool
	faceplate bool
	verbose   bool
}

func printReport(w io.Writer, rep whattime.Report, opts printOptions) {
	switch rep.Status {
	case "needs_confirmation":
		warnColor.Fprintf(w, "🤔 %s\n", rep.Prompt)
		dimColor.Fprintf(w, "   re-run with --yes to accept %s\n", rep.Timezone)
		return
	case "not_found":
		errColor.Fprintf(w, "❌ No time zone found for %q\n", rep.Query)
		return
	}

	name := rep.Spoken
	if name == "" {
		name = rep.Timezone
	}
	headerColor.Fprintf(w, "🌍 %s\n", name)
	fmt.Fprintln(w, strings.Repeat("─", 50))
	fmt.Fprintf(w, "🕐 Time:      %s\n", timeColor.Sprint(rep.Time))
	fmt.Fprintf(w, "🗺  Timezone:  %s (%s)\n", rep.Timezone, rep.Offset)
	if opts.date {
		fmt.Fprintf(w, "📅 Date:      %s, %s (%s)\n", rep.Weekday, rep.MonthDate, rep.Date)
	}
	if opts.verbose {
		dimColor.Fprintf(w, "   matched by %s, score %.2f\n", rep.Strategy, rep.Score)
		dimColor.Fprintf(w, "   spoken: %q\n", rep.SpokenTime)
	}
	if opts.faceplate {
		printFaceplate(w, rep.Time)
	}
}

func printFaceplate(w io.Writer, display string) {
	draws, err := faceplate.Encode(display)
	if err != nil {
		warnColor.Fprintf(w, "⚠️  faceplate: %v\n", err)
		return
	}
	parts := make([]string, 0, len(draws))
	for _, d := range draws {
		parts = append(parts, fmt.Sprintf("%s@%d", d.Code, d.X))
	}
	fmt.Fprintf(w, "🤖 Faceplate: %s (row %d)\n", strings.Join(parts, " "), faceplate.Row)
}
