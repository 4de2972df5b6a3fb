package core

// convert.go coerces loosely typed source values into Go values.
//
// These functions handle the messy reality of curated literature data:
//   - Numbers stored as strings ("2010", "9.2") or as JSON numbers
//   - Years with trailing noise ("2010-05", "2010a")
//   - Affinity values with units or notes after the number ("8.7 (est.)")
//   - Various boolean representations (yes/no, true/false, 1/0)
//
// Every To* function returns a zero value (or ok=false) for empty or
// unusable input instead of an error, so one bad field never drops a record.

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numericPrefix matches the leading number of a string: integers, decimals,
// and scientific notation.
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// integerPrefix matches a leading optionally signed integer.
var integerPrefix = regexp.MustCompile(`^[+-]?\d+`)

// ToText converts a source value to a trimmed string.
// Numbers are formatted without trailing zeros; nil and other types are empty.
func ToText(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// ToYear converts a source value to a year.
// Strings are read up to the first non-digit, so "2010-05" is 2010.
// Anything unparseable or not positive is 0.
func ToYear(v any) int {
	var year int
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0
		}
		year = int(t)
	case string:
		m := integerPrefix.FindString(strings.TrimSpace(t))
		if m == "" {
			return 0
		}
		n, err := strconv.Atoi(m)
		if err != nil {
			return 0
		}
		year = n
	}
	if year < 0 {
		return 0
	}
	return year
}

// ToNumeric converts a source value to a float.
// Strings are read up to the end of their leading number, so "8.7 (est.)"
// is 8.7. Returns false for empty, unparseable, or non-finite input.
func ToNumeric(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, false
		}
		return t, true
	case string:
		m := numericPrefix.FindString(strings.TrimSpace(t))
		if m == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(m, 64)
		if err != nil || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// ToBool converts a source value to a bool.
// Accepts JSON booleans, 1/0, and true/false, yes/no, t/f, y/n strings.
func ToBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t == 1
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "t", "yes", "y", "1":
			return true
		}
	}
	return false
}
