package payload

import (
	"regexp"
	"strings"
	"time"
)

var (
	nonDigit    = regexp.MustCompile(`\D+`)
	nonIdentRun = regexp.MustCompile(`[^0-9A-Za-z_-]+`)
	nonDateRun  = regexp.MustCompile(`[^0-9-]+`)
)

// DigitsOnly strips every non-digit character.
func DigitsOnly(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

// AlnumDashUnderscore strips every character outside [0-9A-Za-z_-].
func AlnumDashUnderscore(s string) string {
	return nonIdentRun.ReplaceAllString(s, "")
}

// DateChars strips everything but digits and '-'.
func DateChars(s string) string {
	return nonDateRun.ReplaceAllString(s, "")
}

// ClampDigits keeps the digits of s and truncates them to n characters.
func ClampDigits(s string, n int) string {
	d := DigitsOnly(s)
	if len(d) <= n {
		return d
	}
	return d[:n]
}

// SplitComposite splits value on the first delimiter and trims both halves.
// An empty value yields ("", ""); a value without the delimiter yields the
// trimmed value and "".
func SplitComposite(value, delimiter string) (string, string) {
	if value == "" {
		return "", ""
	}
	left, right, found := strings.Cut(value, delimiter)
	if !found {
		return strings.TrimSpace(value), ""
	}
	return strings.TrimSpace(left), strings.TrimSpace(right)
}

// LotDate formats t as the YYMMDD half of a Smart lot code.
func LotDate(t time.Time) string {
	return t.Format("060102")
}

// ShipDate formats t as an IC-Bin YYYY-MM-DD date.
func ShipDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
