package main

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color formatted as #RRGGBB with uppercase hex digits.
type Color string

const (
	// DefaultColor is shown and recorded before anything is generated
	DefaultColor Color = "#3498DB"

	// MaxColorValue is the largest 24-bit color value
	MaxColorValue = 0xFFFFFF

	// RGBUnavailable is returned by HexToRGB for malformed input
	RGBUnavailable = "N/A"

	// lightnessThreshold is the CIE L* above which dark text is used on a swatch
	lightnessThreshold = 0.6
)

var hexColorPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

// FormatColor formats the low 24 bits of v as a Color.
func FormatColor(v uint32) Color {
	return Color(fmt.Sprintf("#%06X", v&MaxColorValue))
}

// ParseColor validates s and normalizes it to the #RRGGBB uppercase form.
func ParseColor(s string) (Color, error) {
	if !hexColorPattern.MatchString(s) {
		return "", &ColorError{Value: s}
	}
	return Color("#" + strings.ToUpper(strings.TrimPrefix(s, "#"))), nil
}

// RGB returns the decimal "R, G, B" form of the color.
func (c Color) RGB() string {
	return HexToRGB(string(c))
}

// Valid reports whether c is a well-formed #RRGGBB color
func (c Color) Valid() bool {
	parsed, err := ParseColor(string(c))
	return err == nil && parsed == c
}

// Foreground picks a palette text color that stays readable on top of c.
func (c Color) Foreground() lipgloss.Color {
	cc, err := colorful.Hex(string(c))
	if err != nil {
		return Text
	}
	l, _, _ := cc.Lab()
	if l > lightnessThreshold {
		return Crust
	}
	return Text
}

// HexToRGB converts "#RRGGBB" (case-insensitive, "#" optional) into a
// comma-joined decimal triplet. Anything else yields RGBUnavailable.
func HexToRGB(hex string) string {
	match := hexColorPattern.FindStringSubmatch(hex)
	if match == nil {
		return RGBUnavailable
	}

	channels := make([]string, 0, 3)
	for _, part := range match[1:] {
		v, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return RGBUnavailable
		}
		channels = append(channels, strconv.FormatUint(v, 10))
	}

	return strings.Join(channels, ", ")
}

// ColorGenerator draws uniformly random colors over the full 24-bit range.
type ColorGenerator struct {
	rng *rand.Rand
}

// NewColorGenerator creates a generator reading from src. A nil src is
// replaced with a randomly seeded PCG source.
func NewColorGenerator(src rand.Source) *ColorGenerator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &ColorGenerator{rng: rand.New(src)}
}

// Next returns a new random color
func (g *ColorGenerator) Next() Color {
	return FormatColor(uint32(g.rng.IntN(MaxColorValue + 1)))
}
