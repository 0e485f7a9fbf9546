package main

import (
	"net/url"
	"time"

	"hostup.co.in/hostup-web/internal/booking"
	"hostup.co.in/hostup-web/internal/format"
)

const (
	bookingScheduledNotice = "Consultation scheduled! WhatsApp opened with your details. We'll confirm your appointment shortly."
	bookingReadyNotice     = "Your consultation request is ready. Send it to us on WhatsApp or by email and we'll confirm your appointment shortly."
)

var stepLabels = map[booking.Step]string{
	booking.StepDate:    "Select Date",
	booking.StepTime:    "Choose Time",
	booking.StepContact: "Your Details",
}

// BookingView is the view model for the consultation wizard.
type BookingView struct {
	Step      booking.Step
	Steps     []BookingStepView
	Month     booking.MonthView
	Slots     []SlotView
	DateLabel string
	Time      string
	Contact   booking.Contact
	Locations []booking.Location

	CanAdvance bool
	OnDate     bool
	OnTime     bool
	OnContact  bool

	CSRFToken string

	// Scheduled is set on the standalone page after a successful submission.
	Scheduled *BookingScheduledView
}

// BookingStepView is one entry of the progress indicator.
type BookingStepView struct {
	Number int
	ID     string
	Label  string
	Active bool
	Done   bool
}

type SlotView struct {
	Label    string
	Selected bool
}

// BookingScheduledView backs the notice that replaces the modal after a
// successful submission.
type BookingScheduledView struct {
	Message   string
	Request   booking.Request
	DismissMs int64
}

func buildBookingView(wz *booking.Wizard, csrf string) BookingView {
	st := wz.State()
	v := BookingView{
		Step:       st.Step,
		Month:      wz.Month(),
		Time:       st.Time,
		Contact:    st.Contact,
		Locations:  booking.Locations,
		CanAdvance: wz.CanAdvance(),
		OnDate:     st.Step == booking.StepDate,
		OnTime:     st.Step == booking.StepTime,
		OnContact:  st.Step == booking.StepContact,
		CSRFToken:  csrf,
	}
	if !st.Date.IsZero() {
		v.DateLabel = format.FmtLongDate(st.Date.Time(time.UTC))
	}
	for s := booking.StepDate; s <= booking.StepContact; s++ {
		v.Steps = append(v.Steps, BookingStepView{
			Number: int(s),
			ID:     s.ID(),
			Label:  stepLabels[s],
			Active: s == st.Step,
			Done:   s < st.Step,
		})
	}
	for _, slot := range wz.Slots() {
		v.Slots = append(v.Slots, SlotView{Label: slot, Selected: slot == st.Time})
	}
	return v
}

// parseBookingContact reads the contact step inputs.
func parseBookingContact(form url.Values) booking.Contact {
	return booking.Contact{
		Name:     form.Get("name"),
		Email:    form.Get("email"),
		Phone:    form.Get("phone"),
		Location: form.Get("location"),
		Notes:    form.Get("notes"),
	}
}

// hasContactFields reports whether the posted form carried the contact step.
func hasContactFields(form url.Values) bool {
	for _, k := range []string{"name", "email", "phone", "location", "notes"} {
		if _, ok := form[k]; ok {
			return true
		}
	}
	return false
}
