// Package validate holds the field rules shared by the contact form and the
// consultation wizard.
package validate

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Inline messages rendered below an offending field.
const (
	MsgRequired = "This field is required"
	MsgEmail    = "Please enter a valid email address"
	MsgPhone    = "Please enter a valid phone number"
)

// Phone numbers are accepted with 10 to 13 digits once punctuation is removed.
const (
	MinPhoneDigits = 10
	MaxPhoneDigits = 13
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Kind selects the shape check applied to a field.
type Kind string

const (
	KindText  Kind = "text"
	KindEmail Kind = "email"
	KindTel   Kind = "tel"
)

// Field is a single input as submitted by the browser.
type Field struct {
	Name     string
	Value    string
	Kind     Kind
	Required bool
}

// Required reports whether v carries anything besides whitespace.
func Required(v string) bool {
	return strings.TrimSpace(v) != ""
}

// Email reports whether v looks like an address: one "@", a dot in the domain, no spaces.
func Email(v string) bool {
	return emailPattern.MatchString(strings.TrimSpace(v))
}

// Digits strips everything that is not an ASCII digit.
func Digits(v string) string {
	var b strings.Builder
	b.Grow(len(v))
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Phone reports whether v holds between MinPhoneDigits and MaxPhoneDigits digits.
func Phone(v string) bool {
	n := len(Digits(v))
	return n >= MinPhoneDigits && n <= MaxPhoneDigits
}

// Length reports whether the trimmed rune count of v lies within [min, max].
// A max of zero disables the upper bound.
func Length(v string, min, max int) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(v))
	if n < min {
		return false
	}
	return max <= 0 || n <= max
}

// Clip trims v and cuts it to at most max runes.
func Clip(v string, max int) string {
	v = strings.TrimSpace(v)
	if max <= 0 || utf8.RuneCountInString(v) <= max {
		return v
	}
	return strings.TrimSpace(string([]rune(v)[:max]))
}

// OneOf reports whether v matches one of choices, ignoring case.
func OneOf(v string, choices ...string) bool {
	v = strings.TrimSpace(v)
	for _, c := range choices {
		if strings.EqualFold(v, c) {
			return true
		}
	}
	return false
}

// CheckField returns the inline message for f, or "" when the value is acceptable.
// Blank optional fields are always acceptable.
func CheckField(f Field) string {
	value := strings.TrimSpace(f.Value)
	if value == "" {
		if f.Required {
			return MsgRequired
		}
		return ""
	}
	switch f.Kind {
	case KindEmail:
		if !Email(value) {
			return MsgEmail
		}
	case KindTel:
		if !Phone(value) {
			return MsgPhone
		}
	}
	return ""
}

// KindFor maps an HTML input type attribute to a Kind.
func KindFor(inputType string) Kind {
	switch strings.ToLower(strings.TrimSpace(inputType)) {
	case "email":
		return KindEmail
	case "tel":
		return KindTel
	default:
		return KindText
	}
}

// Errors collects field -> message pairs for one form submission.
type Errors map[string]string

// Add records msg for field unless the field already has a message.
func (e Errors) Add(field, msg string) {
	if msg == "" {
		return
	}
	if _, ok := e[field]; ok {
		return
	}
	e[field] = msg
}

// Has reports whether field failed validation.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Get returns the message for field.
func (e Errors) Get(field string) string { return e[field] }

// Empty reports whether no field failed.
func (e Errors) Empty() bool { return len(e) == 0 }

// Fields returns the failing field names in sorted order.
func (e Errors) Fields() []string {
	out := make([]string, 0, len(e))
	for k := range e {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
