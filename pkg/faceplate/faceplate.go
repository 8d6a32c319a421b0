// Package faceplate encodes a clock reading into draw commands for the
// Mycroft Mark 1 mouth matrix.
package faceplate

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned for characters the matrix font lacks.
var ErrUnsupported = errors.New("character not drawable on faceplate")

const (
	startX     = 7
	digitWidth = 4
	colonWidth = 2
	maxGlyphs  = 5
	// Row is the vertical offset every glyph is drawn at.
	Row = 1
)

var glyphs = map[rune]string{
	':': "BIEB",
	'0': "DIODCCOD",
	'1': "DIECODAC",
	'2': "DIKDKCOC",
	'3': "DIKCKCOD",
	'4': "DIOAIAOD",
	'5': "DIOCKCKD",
	'6': "DIODKCKD",
	'7': "DICACAOD",
	'8': "DIODKCOD",
	'9': "DIOAKAOD",
}

// Draw is one glyph placed at column X.
type Draw struct {
	Code string `json:"code"`
	X    int    `json:"x"`
}

// Encode converts up to the first five characters of s ("12:30", "4:30")
// into draw commands laid out left to right.
func Encode(s string) ([]Draw, error) {
	var draws []Draw
	x := startX
	for i, r := range []rune(s) {
		if i == maxGlyphs {
			break
		}
		code, ok := glyphs[r]
		if !ok {
			return nil, fmt.Errorf("encoding %q at position %d: %w", r, i, ErrUnsupported)
		}
		draws = append(draws, Draw{Code: code, X: x})
		if r == ':' {
			x += colonWidth
		} else {
			x += digitWidth
		}
	}
	return draws, nil
}
