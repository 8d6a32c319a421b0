// Package clock renders instants in a resolved time zone for display and
// speech.
package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Format selects how the time of day is rendered.
type Format string

const (
	// Format24h renders "23:30".
	Format24h Format = "24h"
	// FormatAMPM renders "11:30 PM".
	FormatAMPM Format = "ampm"
	// Format12h renders "11:30" without a meridiem.
	Format12h Format = "12h"
)

// DateOrder selects the field order for numeric dates.
type DateOrder string

const (
	// MDY renders "1/2/2000".
	MDY DateOrder = "MDY"
	// DMY renders "2/1/2000".
	DMY DateOrder = "DMY"
	// YMD renders "2000/1/2".
	YMD DateOrder = "YMD"
)

// ParseFormat accepts "24h", "12h" and "ampm" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Format24h, FormatAMPM, Format12h:
		return f, nil
	case "full":
		return Format24h, nil
	default:
		return "", fmt.Errorf("unknown time format %q (want 24h, 12h or ampm)", s)
	}
}

// ParseDateOrder accepts "MDY", "DMY" and "YMD" in any case.
func ParseDateOrder(s string) (DateOrder, error) {
	switch o := DateOrder(strings.ToUpper(strings.TrimSpace(s))); o {
	case MDY, DMY, YMD:
		return o, nil
	default:
		return "", fmt.Errorf("unknown date order %q (want MDY, DMY or YMD)", s)
	}
}

// Load returns the location for an IANA zone id.
func Load(zone string) (*time.Location, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("loading zone %q: %w", zone, err)
	}
	return loc, nil
}

// DisplayTime renders the time of day of t in its own location.
func DisplayTime(t time.Time, f Format) string {
	switch f {
	case FormatAMPM:
		return t.Format("3:04 PM")
	case Format12h:
		return t.Format("3:04")
	default:
		return t.Format("15:04")
	}
}

// SpokenTime renders the time of day for text-to-speech: "4 PM" on the hour,
// "4 oh 5 PM" for single digit minutes and "16 hundred" for 24h on the hour.
func SpokenTime(t time.Time, f Format) string {
	minute := t.Minute()
	var hour, suffix string
	switch f {
	case FormatAMPM, Format12h:
		hour = t.Format("3")
		if f == FormatAMPM {
			suffix = " " + t.Format("PM")
		}
	default:
		hour = strconv.Itoa(t.Hour())
		if minute == 0 {
			return hour + " hundred"
		}
	}

	switch {
	case minute == 0:
		return hour + suffix
	case minute < 10:
		return hour + " oh " + strconv.Itoa(minute) + suffix
	default:
		return hour + " " + strconv.Itoa(minute) + suffix
	}
}

// DisplayDate renders t as an unpadded numeric date in the given order.
func DisplayDate(t time.Time, order DateOrder) string {
	y, m, d := t.Year(), int(t.Month()), t.Day()
	switch order {
	case DMY:
		return fmt.Sprintf("%d/%d/%d", d, m, y)
	case YMD:
		return fmt.Sprintf("%d/%d/%d", y, m, d)
	default:
		return fmt.Sprintf("%d/%d/%d", m, d, y)
	}
}

// MonthDate renders "January 01", or "01 January" for day-first orders.
func MonthDate(t time.Time, order DateOrder) string {
	if order == DMY {
		return t.Format("02 January")
	}
	return t.Format("January 02")
}

// Weekday returns the English day name.
func Weekday(t time.Time) string {
	return t.Weekday().String()
}

// Year returns the four digit year.
func Year(t time.Time) string {
	return strconv.Itoa(t.Year())
}

// IsLeapYear reports whether year has a February 29th.
func IsLeapYear(year int) bool {
	return year%400 == 0 || (year%4 == 0 && year%100 != 0)
}

// NextLeapYear returns the first leap year strictly after year.
func NextLeapYear(year int) int {
	for y := year + 1; ; y++ {
		if IsLeapYear(y) {
			return y
		}
	}
}

// OffsetLabel renders the UTC offset in force in loc at t: "UTC", "UTC-7",
// "UTC+5:30".
func OffsetLabel(loc *time.Location, t time.Time) string {
	if loc == nil {
		loc = time.UTC
	}
	_, offset := t.In(loc).Zone()
	if offset == 0 {
		return "UTC"
	}
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours, minutes := offset/3600, (offset%3600)/60
	if minutes == 0 {
		return fmt.Sprintf("UTC%s%d", sign, hours)
	}
	return fmt.Sprintf("UTC%s%d:%02d", sign, hours, minutes)
}
