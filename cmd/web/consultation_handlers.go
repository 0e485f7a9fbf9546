package main

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"hostup.co.in/hostup-web/internal/booking"
	mw "hostup.co.in/hostup-web/internal/middleware"
	"hostup.co.in/hostup-web/internal/observability"
)

const consultationResumePath = "/consultation?resume=1"

// wizard wraps the session's booking state. Callers mutate through it and
// then mark the session dirty.
func (a *app) wizard(r *http.Request) (*booking.Wizard, *mw.SessionData) {
	sess := mw.GetSession(r)
	return booking.New(&sess.Booking, a.biz, a.wizardOpts...), sess
}

// ConsultationHandler opens the wizard. htmx requests receive the modal
// fragment; everything else gets the standalone page. Opening resets any
// previous progress unless the page is resumed after a form post.
func (a *app) ConsultationHandler(w http.ResponseWriter, r *http.Request) {
	wz, sess := a.wizard(r)
	if mw.IsHTMX(r.Context()) || r.URL.Query().Get("resume") == "" {
		wz.Open()
		sess.MarkDirty()
		a.metrics.ObserveBookingTransition("open", nil)
	}
	view := buildBookingView(wz, mw.CSRFToken(r))
	if mw.IsHTMX(r.Context()) {
		renderFragment(w, r, http.StatusOK, "consultation_modal", view)
		return
	}
	data := a.pageData(r, "Schedule Free Consultation", "Pick a date and time for a free property consultation with HostUp.")
	data.SEO.Robots = "noindex"
	data.Booking = view
	render(w, r, http.StatusOK, "consultation", data)
}

// ConsultationMonthHandler moves the calendar cursor by one month.
func (a *app) ConsultationMonthHandler(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	wz, sess := a.wizard(r)
	keepContactDraft(wz, r)
	switch r.PostForm.Get("dir") {
	case "prev":
		wz.PreviousMonth()
	case "next":
		wz.NextMonth()
	default:
		mw.WriteError(w, r, http.StatusBadRequest, "invalid month direction")
		return
	}
	sess.MarkDirty()
	a.metrics.ObserveBookingTransition("month", nil)
	a.renderWizard(w, r, wz)
}

// ConsultationDateHandler selects the clicked calendar day.
func (a *app) ConsultationDateHandler(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	day, err := booking.ParseDay(r.PostForm.Get("date"))
	if err != nil {
		observability.FromContext(r.Context()).Warn("bad booking date", zap.String("date", r.PostForm.Get("date")))
		mw.WriteError(w, r, http.StatusBadRequest, "invalid date")
		return
	}
	wz, sess := a.wizard(r)
	if err := wz.SelectDate(day); err != nil {
		a.bookingAlert(w, r, "date", err)
		return
	}
	sess.MarkDirty()
	a.metrics.ObserveBookingTransition("date", nil)
	a.renderWizard(w, r, wz)
}

// ConsultationTimeHandler selects one of the listed slots.
func (a *app) ConsultationTimeHandler(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	wz, sess := a.wizard(r)
	if err := wz.SelectTime(r.PostForm.Get("time")); err != nil {
		a.bookingAlert(w, r, "time", err)
		return
	}
	sess.MarkDirty()
	a.metrics.ObserveBookingTransition("time", nil)
	a.renderWizard(w, r, wz)
}

// ConsultationNextHandler advances when the current step's guard holds.
func (a *app) ConsultationNextHandler(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	wz, sess := a.wizard(r)
	if err := wz.Advance(); err != nil {
		a.bookingAlert(w, r, "next", err)
		return
	}
	sess.MarkDirty()
	a.metrics.ObserveBookingTransition("next", nil)
	a.renderWizard(w, r, wz)
}

// ConsultationBackHandler steps back, keeping the contact draft.
func (a *app) ConsultationBackHandler(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	wz, sess := a.wizard(r)
	keepContactDraft(wz, r)
	wz.Retreat()
	sess.MarkDirty()
	a.metrics.ObserveBookingTransition("back", nil)
	a.renderWizard(w, r, wz)
}

// ConsultationCloseHandler discards progress. htmx swaps the modal out with
// the empty body.
func (a *app) ConsultationCloseHandler(w http.ResponseWriter, r *http.Request) {
	wz, sess := a.wizard(r)
	wz.Close()
	sess.MarkDirty()
	a.metrics.ObserveBookingTransition("close", nil)
	if mw.IsHTMX(r.Context()) {
		w.Header().Set("HX-Retarget", "#calendar-modal")
		w.Header().Set("HX-Reswap", "outerHTML")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ConsultationScheduleHandler submits the wizard. On success the browser is
// told to open the WhatsApp link and the modal is replaced by a notice.
func (a *app) ConsultationScheduleHandler(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	logger := observability.FromContext(r.Context())
	wz, sess := a.wizard(r)
	contact := parseBookingContact(r.PostForm)

	req, err := wz.Submit(contact)
	a.metrics.ObserveBookingSubmission(err)
	if err != nil {
		logger.Info("consultation rejected", zap.Error(err))
		if !mw.IsHTMX(r.Context()) {
			// full page posts lose the typed values on redirect
			wz.SaveContact(contact)
			sess.MarkDirty()
		}
		a.bookingAlert(w, r, "schedule", err)
		return
	}
	sess.MarkDirty()
	logger.Info("consultation requested",
		zap.String("reference", req.Reference),
		zap.String("date", req.Date.String()),
		zap.String("time", req.Time),
		zap.String("location", req.Contact.Location),
	)

	view := BookingScheduledView{
		Message:   bookingScheduledNotice,
		Request:   req,
		DismissMs: a.cfg.UI.NoticeDismiss.Milliseconds(),
	}
	if mw.IsHTMX(r.Context()) {
		if err := mw.SetTrigger(w, map[string]any{
			"booking:scheduled": map[string]string{
				"reference": req.Reference,
				"whatsapp":  req.Links.WhatsApp,
				"email":     req.Links.Email,
			},
		}); err != nil {
			logger.Warn("encode trigger", zap.Error(err))
		}
		w.Header().Set("HX-Retarget", "#calendar-modal")
		w.Header().Set("HX-Reswap", "outerHTML")
		renderFragment(w, r, http.StatusOK, "booking_scheduled", view)
		return
	}
	view.Message = bookingReadyNotice
	data := a.pageData(r, "Consultation scheduled", "")
	data.SEO.Robots = "noindex"
	data.Booking = BookingView{Scheduled: &view}
	render(w, r, http.StatusOK, "consultation", data)
}

// renderWizard answers a successful transition: the wizard fragment for
// htmx, a redirect back to the page otherwise.
func (a *app) renderWizard(w http.ResponseWriter, r *http.Request, wz *booking.Wizard) {
	if !mw.IsHTMX(r.Context()) {
		http.Redirect(w, r, consultationResumePath, http.StatusSeeOther)
		return
	}
	renderFragment(w, r, http.StatusOK, "booking_wizard", buildBookingView(wz, mw.CSRFToken(r)))
}

// bookingAlert reports a rejected transition. htmx clients get a 422 with a
// booking:alert event and no swap; full page posts get a flash and a redirect.
func (a *app) bookingAlert(w http.ResponseWriter, r *http.Request, action string, err error) {
	a.metrics.ObserveBookingTransition(action, err)
	msg := err.Error()
	if !isBookingError(err) {
		observability.FromContext(r.Context()).Error("booking transition", zap.String("action", action), zap.Error(err))
		msg = "Something went wrong. Please try again."
	}
	if mw.IsHTMX(r.Context()) {
		_ = mw.SetTrigger(w, map[string]any{"booking:alert": map[string]string{"message": msg}})
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}
	mw.GetSession(r).AddFlash("error", msg)
	http.Redirect(w, r, consultationResumePath, http.StatusSeeOther)
}

// keepContactDraft saves the contact inputs when the form carried them.
func keepContactDraft(wz *booking.Wizard, r *http.Request) {
	if wz.Step() == booking.StepContact && hasContactFields(r.PostForm) {
		wz.SaveContact(parseBookingContact(r.PostForm))
	}
}

func isBookingError(err error) bool {
	for _, target := range []error{
		booking.ErrDateRequired,
		booking.ErrTimeRequired,
		booking.ErrDateUnavailable,
		booking.ErrUnknownSlot,
		booking.ErrMissingFields,
		booking.ErrInvalidEmail,
		booking.ErrInvalidPhone,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		mw.WriteError(w, r, http.StatusBadRequest, "invalid form")
		return false
	}
	return true
}

// indiaTime is the zone bookings are made in.
func indiaTime() *time.Location {
	if loc, err := time.LoadLocation("Asia/Kolkata"); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*60*60+30*60)
}
