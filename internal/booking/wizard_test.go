package booking

import (
	"net/url"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBusiness = Business{
	Name:           "HostUp",
	WhatsAppNumber: "919819726493",
	Email:          "hostup.co.in@gmail.com",
}

func fixedClock() time.Time {
	return time.Date(2026, time.October, 17, 15, 4, 5, 0, time.UTC)
}

func newTestWizard(t *testing.T, state *State) *Wizard {
	t.Helper()
	return New(state, testBusiness,
		WithClock(fixedClock),
		WithLocation(time.UTC),
		WithReference(func() string { return "ref-1" }),
	)
}

func validContact() Contact {
	return Contact{
		Name:     "Asha Verma",
		Email:    "a@b.com",
		Phone:    "9876543210",
		Location: "jaipur",
	}
}

// readyWizard walks a fresh wizard to the contact step.
func readyWizard(t *testing.T) (*Wizard, *State) {
	t.Helper()
	state := &State{}
	w := newTestWizard(t, state)
	require.NoError(t, w.SelectDate(Day{Year: 2026, Month: time.October, Day: 20}))
	require.NoError(t, w.Advance())
	require.NoError(t, w.SelectTime("3:00 PM"))
	require.NoError(t, w.Advance())
	require.Equal(t, StepContact, w.Step())
	return w, state
}

func TestNewRepairsState(t *testing.T) {
	t.Parallel()

	state := &State{Step: 9}
	w := newTestWizard(t, state)
	assert.Equal(t, StepDate, w.Step())
	assert.Equal(t, Month{Year: 2026, Month: time.October}, state.Cursor)
	assert.Equal(t, "date-selection", w.Step().ID())
}

func TestAdvanceRequiresDate(t *testing.T) {
	t.Parallel()

	w := newTestWizard(t, &State{})
	assert.False(t, w.CanAdvance())
	assert.ErrorIs(t, w.Advance(), ErrDateRequired)
	assert.Equal(t, StepDate, w.Step())
}

func TestAdvanceRequiresTime(t *testing.T) {
	t.Parallel()

	w := newTestWizard(t, &State{})
	require.NoError(t, w.SelectDate(Day{Year: 2026, Month: time.October, Day: 17}), "today is selectable")
	require.True(t, w.CanAdvance())
	require.NoError(t, w.Advance())
	require.Equal(t, StepTime, w.Step())

	assert.False(t, w.CanAdvance())
	assert.ErrorIs(t, w.Advance(), ErrTimeRequired)
	assert.Equal(t, StepTime, w.Step())
}

func TestContactStepReachableOnlyWithBoth(t *testing.T) {
	t.Parallel()

	w, state := readyWizard(t)
	assert.False(t, state.Date.IsZero())
	assert.Equal(t, "3:00 PM", state.Time)
	assert.False(t, w.CanAdvance())
	assert.NoError(t, w.Advance(), "advancing on the last step is a no-op")
	assert.Equal(t, StepContact, w.Step())
}

func TestSelectDateRejectsPast(t *testing.T) {
	t.Parallel()

	w := newTestWizard(t, &State{})
	err := w.SelectDate(Day{Year: 2026, Month: time.October, Day: 16})
	assert.ErrorIs(t, err, ErrDateUnavailable)
	assert.True(t, w.State().Date.IsZero())
	assert.ErrorIs(t, w.SelectDate(Day{}), ErrDateRequired)
}

func TestSelectTimeRejectsUnknownSlot(t *testing.T) {
	t.Parallel()

	w := newTestWizard(t, &State{})
	assert.ErrorIs(t, w.SelectTime("1:00 AM"), ErrUnknownSlot)
	assert.NoError(t, w.SelectTime(" 10:00 AM "))
	assert.Equal(t, "10:00 AM", w.State().Time)
}

func TestRetreatKeepsLaterData(t *testing.T) {
	t.Parallel()

	w, state := readyWizard(t)
	w.SaveContact(Contact{Name: "  Asha  ", Notes: "2BHK"})
	w.Retreat()
	w.Retreat()
	w.Retreat()

	assert.Equal(t, StepDate, w.Step())
	assert.Equal(t, "3:00 PM", state.Time)
	assert.Equal(t, Day{Year: 2026, Month: time.October, Day: 20}, state.Date)
	assert.Equal(t, "Asha", state.Contact.Name)
}

func TestSaveContactCapsDraftFields(t *testing.T) {
	t.Parallel()

	w, state := readyWizard(t)
	w.SaveContact(Contact{
		Name:  strings.Repeat("a", MaxNameLen+50),
		Notes: strings.Repeat("घर ", 400),
	})
	assert.Len(t, []rune(state.Contact.Name), MaxNameLen)
	assert.LessOrEqual(t, utf8.RuneCountInString(state.Contact.Notes), MaxNotesLen)
	assert.True(t, strings.HasPrefix(state.Contact.Notes, "घर घर"))
}

func TestMonthNavigationHasNoLimit(t *testing.T) {
	t.Parallel()

	w := newTestWizard(t, &State{})
	for i := 0; i < 30; i++ {
		w.PreviousMonth()
	}
	assert.Equal(t, Month{Year: 2024, Month: time.April}, w.State().Cursor)
	for i := 0; i < 60; i++ {
		w.NextMonth()
	}
	assert.Equal(t, Month{Year: 2029, Month: time.April}, w.State().Cursor)
	assert.Equal(t, "April 2029", w.Month().Label)
}

func TestSubmitRequiresAllFields(t *testing.T) {
	t.Parallel()

	blanks := map[string]func(*Contact){
		"name":     func(c *Contact) { c.Name = " " },
		"email":    func(c *Contact) { c.Email = "" },
		"phone":    func(c *Contact) { c.Phone = "" },
		"location": func(c *Contact) { c.Location = "" },
	}
	for field, blank := range blanks {
		t.Run(field, func(t *testing.T) {
			w, state := readyWizard(t)
			before := *state
			c := validContact()
			blank(&c)

			_, err := w.Submit(c)
			require.ErrorIs(t, err, ErrMissingFields)
			assert.Equal(t, before, *state, "failed submit must not touch state")
		})
	}
}

func TestSubmitChecksEmailAndPhone(t *testing.T) {
	t.Parallel()

	w, state := readyWizard(t)
	c := validContact()
	c.Email = "a@b"
	_, err := w.Submit(c)
	require.ErrorIs(t, err, ErrInvalidEmail)
	assert.Equal(t, StepContact, state.Step)

	c = validContact()
	c.Phone = "12345"
	_, err = w.Submit(c)
	require.ErrorIs(t, err, ErrInvalidPhone)
	assert.Equal(t, "3:00 PM", state.Time)
}

func TestSubmitSuccessResetsState(t *testing.T) {
	t.Parallel()

	w, state := readyWizard(t)
	c := validContact()
	c.Notes = "  Two bedroom flat  "

	req, err := w.Submit(c)
	require.NoError(t, err)

	assert.Equal(t, "ref-1", req.Reference)
	assert.Equal(t, "Tuesday, October 20, 2026", req.DateLabel)
	assert.Equal(t, "3:00 PM", req.Time)
	assert.Equal(t, "Two bedroom flat", req.Contact.Notes)
	assert.Equal(t, State{Step: StepDate, Cursor: Month{Year: 2026, Month: time.October}}, *state)

	require.True(t, strings.HasPrefix(req.Links.WhatsApp, "https://wa.me/919819726493?text="))
	u, err := url.Parse(req.Links.WhatsApp)
	require.NoError(t, err)
	text := u.Query().Get("text")
	assert.Contains(t, text, "Tuesday, October 20, 2026 at 3:00 PM")
	assert.Contains(t, text, "Property Location: Jaipur")
	assert.Contains(t, text, "📝 Notes: Two bedroom flat")
	assert.NotContains(t, req.Links.WhatsApp, "+", "spaces encode as %20")
}

func TestSubmitWithoutSlotIsRejected(t *testing.T) {
	t.Parallel()

	w := newTestWizard(t, &State{})
	_, err := w.Submit(validContact())
	assert.ErrorIs(t, err, ErrDateRequired)

	require.NoError(t, w.SelectDate(Day{Year: 2026, Month: time.October, Day: 18}))
	_, err = w.Submit(validContact())
	assert.ErrorIs(t, err, ErrTimeRequired)
}

func TestOpenAndCloseReset(t *testing.T) {
	t.Parallel()

	w, state := readyWizard(t)
	w.NextMonth()
	w.Close()
	assert.Equal(t, State{Step: StepDate, Cursor: Month{Year: 2026, Month: time.October}}, *state)

	_, state = readyWizard(t)
	w = newTestWizard(t, state)
	w.Open()
	assert.True(t, state.Date.IsZero())
	assert.Empty(t, state.Time)
}
