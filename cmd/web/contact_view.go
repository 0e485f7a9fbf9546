package main

import (
	"net/url"
	"strings"

	"hostup.co.in/hostup-web/internal/booking"
	"hostup.co.in/hostup-web/internal/validate"
)

const contactThanks = "Thank you for your message! We will get back to you within 24 hours."

// Contact form messages.
const (
	msgNameRequired    = "Name is required"
	msgNameLength      = "Name must be between 2 and 100 characters"
	msgEmailRequired   = "Email is required"
	msgMessageRequired = "Message is required"
	msgMessageLength   = "Message must be between 10 and 1000 characters"
	msgLocationInvalid = "Please choose one of the listed cities"
)

// ContactForm is the view model for the contact page form.
type ContactForm struct {
	Name      string
	Email     string
	Phone     string
	Location  string
	Message   string
	Errors    validate.Errors
	Locations []booking.Location
}

// ContactSubmission is the accepted form, as logged.
type ContactSubmission struct {
	Name     string
	Email    string
	Phone    string
	Location string
	Message  string
}

func newContactForm() ContactForm {
	return ContactForm{Errors: validate.Errors{}, Locations: booking.Locations}
}

func parseContactForm(form url.Values) ContactForm {
	cf := newContactForm()
	cf.Name = strings.TrimSpace(form.Get("name"))
	cf.Email = strings.TrimSpace(form.Get("email"))
	cf.Phone = strings.TrimSpace(form.Get("phone"))
	cf.Location = strings.ToLower(strings.TrimSpace(form.Get("property_location")))
	cf.Message = strings.TrimSpace(form.Get("message"))
	return cf
}

// validateContactForm applies the contact rules and records failures on cf.
func validateContactForm(cf *ContactForm) {
	errs := cf.Errors
	switch {
	case !validate.Required(cf.Name):
		errs.Add("name", msgNameRequired)
	case !validate.Length(cf.Name, 2, 100):
		errs.Add("name", msgNameLength)
	}
	switch {
	case !validate.Required(cf.Email):
		errs.Add("email", msgEmailRequired)
	case !validate.Email(cf.Email):
		errs.Add("email", validate.MsgEmail)
	}
	if cf.Phone != "" && !validate.Length(cf.Phone, 10, 20) {
		errs.Add("phone", validate.MsgPhone)
	}
	if cf.Location != "" && !validate.OneOf(cf.Location, locationKeys()...) {
		errs.Add("property_location", msgLocationInvalid)
	}
	switch {
	case !validate.Required(cf.Message):
		errs.Add("message", msgMessageRequired)
	case !validate.Length(cf.Message, 10, 1000):
		errs.Add("message", msgMessageLength)
	}
}

func (cf ContactForm) submission() ContactSubmission {
	return ContactSubmission{
		Name:     cf.Name,
		Email:    cf.Email,
		Phone:    cf.Phone,
		Location: cf.Location,
		Message:  cf.Message,
	}
}

func locationKeys() []string {
	keys := make([]string, 0, len(booking.Locations))
	for _, l := range booking.Locations {
		keys = append(keys, l.Key)
	}
	return keys
}

// FieldError is the inline message fragment rendered below one input.
type FieldError struct {
	ID      string
	Message string
}

// fieldErrorID is the DOM id of the message element for an input id.
func fieldErrorID(inputID string) string {
	return inputID + "-error"
}
