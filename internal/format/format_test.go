package format

import (
	"testing"
	"time"
)

func TestFmtLongDate(t *testing.T) {
	d := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)
	if got := FmtLongDate(d); got != "Monday, October 19, 2026" {
		t.Fatalf("unexpected long date: %q", got)
	}
}

func TestFmtCount(t *testing.T) {
	cases := map[int64]string{
		0:       "0",
		75:      "75",
		1200:    "1,200",
		1234567: "1,234,567",
		-4500:   "-4,500",
	}
	for in, want := range cases {
		if got := FmtCount(in, ""); got != want {
			t.Errorf("FmtCount(%d) = %q, want %q", in, got, want)
		}
	}
	if got := FmtCount(35, "%"); got != "35%" {
		t.Errorf("expected suffix to be appended, got %q", got)
	}
}

func TestFmtPhoneIN(t *testing.T) {
	cases := map[string]string{
		"9819726493":      "+91 98197 26493",
		"919819726493":    "+91 98197 26493",
		"+91 93172-10055": "+91 93172 10055",
		"12345":           "12345",
	}
	for in, want := range cases {
		if got := FmtPhoneIN(in); got != want {
			t.Errorf("FmtPhoneIN(%q) = %q, want %q", in, got, want)
		}
	}
}
