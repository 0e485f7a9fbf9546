package format

import (
	"fmt"
	"strings"
	"time"
)

// FmtLongDate renders the full weekday form used in booking messages.
// Example: FmtLongDate(2026-10-19) => "Monday, October 19, 2026"
func FmtLongDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// FmtCount renders a stat counter value with thousands separators and an optional suffix.
// Example: FmtCount(1200, "+") => "1,200+"
func FmtCount(n int64, suffix string) string {
	return thousandSep(n) + suffix
}

// FmtPhoneIN groups an Indian mobile number as "+91 98197 26493".
// Inputs with fewer than ten digits are returned as bare digits.
func FmtPhoneIN(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	v := digits.String()
	if len(v) < 10 {
		return v
	}
	if strings.HasPrefix(v, "91") && len(v) >= 12 {
		v = v[2:]
	}
	return fmt.Sprintf("+91 %s %s", v[:5], v[5:10])
}

func thousandSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	out := ""
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(c)
	}
	if neg {
		return "-" + out
	}
	return out
}
