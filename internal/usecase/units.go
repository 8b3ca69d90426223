package usecase

import (
	"regexp"
	"strconv"
	"strings"
)

// Unit conversion factors to canonical units (inches, pounds, Fahrenheit)
const (
	cmPerInch   = 2.54
	lbsPerKg    = 2.205
	inchesPerFt = 12
)

// Bare-number disambiguation cutoffs. A bare height above 100 can only be
// centimeters; a bare weight below 50 can only be kilograms.
const (
	bareHeightCmCutoff = 100
	bareWeightKgCutoff = 50
)

// Package-level compiled regex patterns for performance
var (
	heightCmRegex     = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:cm|centimeters?)\b`)
	heightFtInRegex   = regexp.MustCompile(`(?i)(\d+)\s*(?:'|ft\b|feet)\s*(\d+(?:\.\d+)?)\s*(?:"|''|in(?:ch(?:es)?)?)?`)
	heightFtOnlyRegex = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:'|ft\b|feet)`)
	heightInRegex     = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:"|in(?:ch(?:es)?)?)\b`)

	weightKgRegex  = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:kg|kgs|kilograms?|kilos?)\b`)
	weightLbsRegex = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:lb|lbs|pounds?)\b`)

	numericTokenRegex = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
)

// ParseHeightInches converts a raw height value into inches.
// Recognized forms, in priority order: centimeters ("175cm"), feet and
// inches ("5'10\"", "5 feet 10 inches"), feet only ("6 ft", value <= 8),
// explicit inches ("70 in"), then bare numbers. A bare number above 100 is
// taken to be centimeters, otherwise inches; a decimal-feet reading must be
// requested explicitly with an "ft" suffix.
// Returns ok=false when nothing numeric can be extracted.
func ParseHeightInches(v any) (float64, bool) {
	if n, ok := numericValue(v); ok {
		return bareHeightToInches(n), true
	}

	s, ok := stringValue(v)
	if !ok {
		return 0, false
	}

	if m := heightCmRegex.FindStringSubmatch(s); m != nil {
		return mustFloat(m[1]) / cmPerInch, true
	}

	if m := heightFtInRegex.FindStringSubmatch(s); m != nil {
		return mustFloat(m[1])*inchesPerFt + mustFloat(m[2]), true
	}

	if m := heightFtOnlyRegex.FindStringSubmatch(s); m != nil {
		if ft := mustFloat(m[1]); ft <= 8 {
			return ft * inchesPerFt, true
		}
	}

	if m := heightInRegex.FindStringSubmatch(s); m != nil {
		return mustFloat(m[1]), true
	}

	if m := numericTokenRegex.FindString(s); m != "" {
		return bareHeightToInches(mustFloat(m)), true
	}

	return 0, false
}

// bareHeightToInches applies the unit-less disambiguation rule.
func bareHeightToInches(n float64) float64 {
	if n > bareHeightCmCutoff {
		return n / cmPerInch
	}
	return n
}

// ParseWeightPounds converts a raw weight value into pounds.
// "kg" converts at 2.205 lbs/kg, "lbs"/"pounds" passes through, and a bare
// number below 50 is assumed to be kilograms.
// Returns ok=false when nothing numeric can be extracted.
func ParseWeightPounds(v any) (float64, bool) {
	if n, ok := numericValue(v); ok {
		return bareWeightToPounds(n), true
	}

	s, ok := stringValue(v)
	if !ok {
		return 0, false
	}

	if m := weightKgRegex.FindStringSubmatch(s); m != nil {
		return mustFloat(m[1]) * lbsPerKg, true
	}

	if m := weightLbsRegex.FindStringSubmatch(s); m != nil {
		return mustFloat(m[1]), true
	}

	if m := numericTokenRegex.FindString(s); m != "" {
		return bareWeightToPounds(mustFloat(m)), true
	}

	return 0, false
}

func bareWeightToPounds(n float64) float64 {
	if n < bareWeightKgCutoff {
		return n * lbsPerKg
	}
	return n
}

// ParseChestInches extracts a chest measurement. No unit inference: the
// first numeric token wins, unit words are ignored.
func ParseChestInches(v any) (float64, bool) {
	return firstNumericToken(v)
}

// ParseTemperatureF extracts a water temperature. No unit inference: the
// first numeric token wins (negative values allowed).
func ParseTemperatureF(v any) (float64, bool) {
	return firstNumericToken(v)
}

// ParseNumber extracts a plain numeric value (board lengths, deck widths,
// head circumferences). First numeric token wins.
func ParseNumber(v any) (float64, bool) {
	return firstNumericToken(v)
}

func firstNumericToken(v any) (float64, bool) {
	if n, ok := numericValue(v); ok {
		return n, true
	}

	s, ok := stringValue(v)
	if !ok {
		return 0, false
	}

	if m := numericTokenRegex.FindString(s); m != "" {
		return mustFloat(m), true
	}

	return 0, false
}

// numericValue unwraps numeric form values. JSON decoding hands numbers
// over as float64, but seeded profiles may carry native ints.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// stringValue unwraps string form values, rejecting empties.
func stringValue(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}

// mustFloat parses a string already validated by a numeric regex.
func mustFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
