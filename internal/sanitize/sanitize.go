// Package sanitize converts user-entered field strings into the integer
// wire representation of the record store and back.
//
// One convention everywhere: money is int64 minor units (x100), weight is
// int64 hundredths of a gram (x100), dates are int64 nanoseconds since epoch
// with 0 meaning "not set". Every converter is total: bad input becomes 0,
// never a panic or an error.
package sanitize

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var phoneRe = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)

// ParseAmount parses a free-form numeric string. Empty, a lone "-" and
// anything unparsable or non-finite all come back as 0.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return v
}

// CurrencyToMinor converts a currency string to integer minor units.
func CurrencyToMinor(s string) int64 {
	return int64(math.Round(ParseAmount(s) * 100))
}

// WeightToHundredths converts a weight-in-grams string to integer
// hundredths of a gram.
func WeightToHundredths(s string) int64 {
	return int64(math.Round(ParseAmount(s) * 100))
}

// DateToNanos converts a YYYY-MM-DD string to nanoseconds since epoch at
// midnight UTC. Empty or unparsable input means "not set" and becomes 0.
func DateToNanos(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return 0
	}

	return t.UTC().UnixNano()
}

// MinorToDisplay is the inverse of CurrencyToMinor: an editable string with
// two decimal places.
func MinorToDisplay(v int64) string {
	return strconv.FormatFloat(float64(v)/100, 'f', 2, 64)
}

// HundredthsToDisplay is the inverse of WeightToHundredths.
func HundredthsToDisplay(v int64) string {
	return strconv.FormatFloat(float64(v)/100, 'f', 2, 64)
}

// NanosToDate is the inverse of DateToNanos; 0 or negative means "not set"
// and becomes the empty string.
func NanosToDate(v int64) string {
	if v <= 0 {
		return ""
	}
	return time.Unix(0, v).UTC().Format(dateLayout)
}

// FormatDate renders a timestamp for read-only views.
func FormatDate(v int64) string {
	if v <= 0 {
		return ""
	}
	return time.Unix(0, v).UTC().Format("2 Jan 2006")
}

// Today returns the current date in form format, used to seed new drafts.
func Today() string {
	return time.Now().Format(dateLayout)
}

// ValidRange rejects converted values outside [min, max] before they are
// sent anywhere.
func ValidRange(v int64, name string, min, max int64) error {
	if v < min || v > max {
		return fmt.Errorf("%s is out of range: %d not in [%d, %d]", name, v, min, max)
	}
	return nil
}

// ValidPhone reports whether s looks like a phone number. Empty input is
// not valid here; callers decide whether the field is optional.
func ValidPhone(s string) bool {
	return phoneRe.MatchString(s)
}

// IsNumeric reports whether a non-empty field parses as a finite number.
// Empty strings count as numeric (they fall back to 0 on conversion).
func IsNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return true
	}

	v, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsNaN(v) && !math.IsInf(v, 0)
}
