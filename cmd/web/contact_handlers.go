package main

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	mw "hostup.co.in/hostup-web/internal/middleware"
	"hostup.co.in/hostup-web/internal/observability"
	"hostup.co.in/hostup-web/internal/validate"
)

// ContactHandler renders the contact page with an empty form.
func (a *app) ContactHandler(w http.ResponseWriter, r *http.Request) {
	data := a.contentPage(r, "contact")
	data.Contact = newContactForm()
	render(w, r, http.StatusOK, "contact", data)
}

// ContactSubmitHandler validates the contact form. Accepted messages are
// logged and acknowledged with a flash; nothing is stored.
func (a *app) ContactSubmitHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		mw.WriteError(w, r, http.StatusBadRequest, "invalid form")
		return
	}
	logger := observability.FromContext(r.Context())

	form := parseContactForm(r.PostForm)
	validateContactForm(&form)
	if !form.Errors.Empty() {
		for _, f := range form.Errors.Fields() {
			a.metrics.ObserveValidationFailure(f)
		}
		a.metrics.ObserveContactSubmission(false)
		logger.Info("contact form rejected", zap.Strings("fields", form.Errors.Fields()))

		data := a.contentPage(r, "contact")
		data.Contact = form
		render(w, r, http.StatusUnprocessableEntity, "contact", data)
		return
	}

	sub := form.submission()
	a.metrics.ObserveContactSubmission(true)
	logger.Info("contact form received",
		zap.String("name", sub.Name),
		zap.String("email", sub.Email),
		zap.String("phone", sub.Phone),
		zap.String("property_location", sub.Location),
		zap.Int("message_length", len(sub.Message)),
	)

	mw.GetSession(r).AddFlash("success", contactThanks)
	mw.Redirect(w, r, "/contact")
}

// validatedFields are the input names accepted by /forms/validate, shared by
// the contact form and the consultation contact step.
var validatedFields = map[string]bool{
	"name":              true,
	"email":             true,
	"phone":             true,
	"property_location": true,
	"location":          true,
	"message":           true,
	"notes":             true,
}

// ValidateFieldHandler checks a single input and renders its inline message.
// The input posts its own value under its name plus hx-vals describing it:
// field (input name), id (input DOM id), kind (text|email|tel) and required.
func (a *app) ValidateFieldHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		mw.WriteError(w, r, http.StatusBadRequest, "invalid form")
		return
	}
	name := strings.TrimSpace(r.PostForm.Get("field"))
	id := strings.TrimSpace(r.PostForm.Get("id"))
	if !validatedFields[name] || id == "" {
		mw.WriteError(w, r, http.StatusBadRequest, "unknown field")
		return
	}
	msg := validate.CheckField(validate.Field{
		Name:     name,
		Value:    r.PostForm.Get(name),
		Kind:     validate.KindFor(r.PostForm.Get("kind")),
		Required: r.PostForm.Get("required") != "",
	})
	if msg != "" {
		a.metrics.ObserveValidationFailure(name)
	}
	renderFragment(w, r, http.StatusOK, "field_error", FieldError{ID: fieldErrorID(id), Message: msg})
}
