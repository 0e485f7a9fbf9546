// Package booking implements the three step consultation wizard: pick a date,
// pick a time slot, leave contact details. The wizard ends by composing
// pre-filled WhatsApp and e-mail links that the browser opens.
package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"hostup.co.in/hostup-web/internal/format"
	"hostup.co.in/hostup-web/internal/validate"
)

// Step identifies the visible wizard panel.
type Step int

const (
	StepDate Step = iota + 1
	StepTime
	StepContact
)

var stepIDs = map[Step]string{
	StepDate:    "date-selection",
	StepTime:    "time-selection",
	StepContact: "contact-details",
}

// ID is the DOM id of the step container.
func (s Step) ID() string { return stepIDs[s] }

// Valid reports whether s lies within [StepDate, StepContact].
func (s Step) Valid() bool { return s >= StepDate && s <= StepContact }

// Errors surfaced to the visitor. Messages are user facing.
var (
	ErrDateRequired    = errors.New("Please select a date.")
	ErrTimeRequired    = errors.New("Please select a time slot.")
	ErrDateUnavailable = errors.New("That date is no longer available.")
	ErrUnknownSlot     = errors.New("Please choose one of the listed time slots.")
	ErrMissingFields   = errors.New("Please fill in all required fields.")
	ErrInvalidEmail    = errors.New("Please enter a valid email address.")
	ErrInvalidPhone    = errors.New("Please enter a valid phone number.")
)

// DefaultSlots are the bookable consultation times.
var DefaultSlots = []string{
	"10:00 AM", "11:00 AM", "12:00 PM",
	"2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM", "6:00 PM",
}

// Location is a selectable property city.
type Location struct {
	Key   string
	Label string
}

// Locations lists the cities the business serves.
var Locations = []Location{
	{Key: "jaipur", Label: "Jaipur"},
	{Key: "delhi", Label: "Delhi"},
	{Key: "mumbai", Label: "Mumbai"},
	{Key: "other", Label: "Other"},
}

// LocationLabel returns the display label for key, or key itself when unknown.
func LocationLabel(key string) string {
	for _, l := range Locations {
		if strings.EqualFold(l.Key, key) {
			return l.Label
		}
	}
	return key
}

// Field limits for the contact step, mirrored by the form's maxlength attributes.
const (
	MaxNameLen     = 100
	MaxEmailLen    = 254
	MaxPhoneLen    = 20
	MaxLocationLen = 64
	MaxNotesLen    = 500
)

// Contact holds the details typed on the last step.
type Contact struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// Trimmed returns c with surrounding whitespace removed and every field cut
// to its limit.
func (c Contact) Trimmed() Contact {
	return Contact{
		Name:     validate.Clip(c.Name, MaxNameLen),
		Email:    validate.Clip(c.Email, MaxEmailLen),
		Phone:    validate.Clip(c.Phone, MaxPhoneLen),
		Location: validate.Clip(c.Location, MaxLocationLen),
		Notes:    validate.Clip(c.Notes, MaxNotesLen),
	}
}

// Validate applies the submit checks in order: required fields, e-mail, phone.
func (c Contact) Validate() error {
	if !validate.Required(c.Name) || !validate.Required(c.Email) ||
		!validate.Required(c.Phone) || !validate.Required(c.Location) {
		return ErrMissingFields
	}
	if !validate.Email(c.Email) {
		return ErrInvalidEmail
	}
	if !validate.Phone(c.Phone) {
		return ErrInvalidPhone
	}
	return nil
}

// State is the per-visitor wizard progress. It is serialized into the session.
type State struct {
	Step    Step    `json:"step,omitempty"`
	Date    Day     `json:"date,omitempty"`
	Time    string  `json:"time,omitempty"`
	Contact Contact `json:"contact,omitempty"`
	Cursor  Month   `json:"cursor,omitempty"`
}

// Request is the outcome of a successful submission.
type Request struct {
	Reference string
	Date      Day
	DateLabel string
	Time      string
	Contact   Contact
	Links     Links
	CreatedAt time.Time
}

// Wizard drives a State through its transitions. It is not safe for concurrent use;
// each request builds its own Wizard over the session's State.
type Wizard struct {
	state  *State
	biz    Business
	slots  []string
	now    func() time.Time
	loc    *time.Location
	newRef func() string
}

// Option customizes a Wizard.
type Option func(*Wizard)

// WithClock overrides the time source used for "today".
func WithClock(now func() time.Time) Option {
	return func(w *Wizard) {
		if now != nil {
			w.now = now
		}
	}
}

// WithLocation sets the zone in which "today" is evaluated.
func WithLocation(loc *time.Location) Option {
	return func(w *Wizard) {
		if loc != nil {
			w.loc = loc
		}
	}
}

// WithReference overrides the request reference generator.
func WithReference(fn func() string) Option {
	return func(w *Wizard) {
		if fn != nil {
			w.newRef = fn
		}
	}
}

// New wraps state. A nil state starts a fresh wizard; an out of range step or
// missing cursor is repaired.
func New(state *State, biz Business, opts ...Option) *Wizard {
	if state == nil {
		state = &State{}
	}
	w := &Wizard{
		state:  state,
		biz:    biz,
		slots:  DefaultSlots,
		now:    time.Now,
		loc:    time.Local,
		newRef: uuid.NewString,
	}
	for _, opt := range opts {
		opt(w)
	}
	if !w.state.Step.Valid() {
		w.state.Step = StepDate
	}
	if w.state.Cursor.IsZero() {
		w.state.Cursor = MonthOf(w.Today())
	}
	return w
}

// State exposes the underlying state for rendering.
func (w *Wizard) State() State { return *w.state }

// Step is the current step.
func (w *Wizard) Step() Step { return w.state.Step }

// Slots lists the bookable times.
func (w *Wizard) Slots() []string { return w.slots }

// Today is the current date in the wizard's zone.
func (w *Wizard) Today() Day { return DayOf(w.now().In(w.loc)) }

// Open starts a clean run positioned on the current month.
func (w *Wizard) Open() {
	w.Reset()
}

// Close discards all progress.
func (w *Wizard) Close() {
	w.Reset()
}

// Reset returns the state to its initial values.
func (w *Wizard) Reset() {
	*w.state = State{Step: StepDate, Cursor: MonthOf(w.Today())}
}

// SelectDate picks d unless it lies before today.
func (w *Wizard) SelectDate(d Day) error {
	if d.IsZero() {
		return ErrDateRequired
	}
	if d.Before(w.Today()) {
		return ErrDateUnavailable
	}
	w.state.Date = d
	return nil
}

// SelectTime picks one of the configured slots.
func (w *Wizard) SelectTime(slot string) error {
	slot = strings.TrimSpace(slot)
	for _, s := range w.slots {
		if s == slot {
			w.state.Time = s
			return nil
		}
	}
	return ErrUnknownSlot
}

// SaveContact keeps a draft of the contact step so moving back does not lose it.
func (w *Wizard) SaveContact(c Contact) {
	w.state.Contact = c.Trimmed()
}

// CanAdvance reports whether the guard for leaving the current step holds.
func (w *Wizard) CanAdvance() bool {
	switch w.state.Step {
	case StepDate:
		return !w.state.Date.IsZero()
	case StepTime:
		return w.state.Time != ""
	default:
		return false
	}
}

// Advance moves to the next step when its guard holds. It is a no-op on the last step.
func (w *Wizard) Advance() error {
	switch w.state.Step {
	case StepDate:
		if w.state.Date.IsZero() {
			return ErrDateRequired
		}
	case StepTime:
		if w.state.Time == "" {
			return ErrTimeRequired
		}
	default:
		return nil
	}
	w.state.Step++
	return nil
}

// Retreat moves back one step. Selections made on later steps are kept.
func (w *Wizard) Retreat() {
	if w.state.Step > StepDate {
		w.state.Step--
	}
}

// PreviousMonth moves the calendar cursor back one month.
func (w *Wizard) PreviousMonth() { w.state.Cursor = w.state.Cursor.Prev() }

// NextMonth moves the calendar cursor forward one month.
func (w *Wizard) NextMonth() { w.state.Cursor = w.state.Cursor.Next() }

// Month derives the grid for the cursor.
func (w *Wizard) Month() MonthView {
	return BuildMonth(w.state.Cursor, w.Today(), w.state.Date)
}

// Submit validates c against the selected slot and, on success, composes the
// outbound links and resets the wizard. On failure the state is left untouched.
func (w *Wizard) Submit(c Contact) (Request, error) {
	c = c.Trimmed()
	if w.state.Date.IsZero() {
		return Request{}, ErrDateRequired
	}
	if w.state.Time == "" {
		return Request{}, ErrTimeRequired
	}
	if err := c.Validate(); err != nil {
		return Request{}, err
	}

	req := Request{
		Reference: w.newRef(),
		Date:      w.state.Date,
		DateLabel: format.FmtLongDate(w.state.Date.Time(w.loc)),
		Time:      w.state.Time,
		Contact:   c,
		CreatedAt: w.now().UTC(),
	}
	req.Links = BuildLinks(w.biz, req)
	w.Reset()
	return req, nil
}
