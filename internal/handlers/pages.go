package handlers

import (
	"hostup.co.in/hostup-web/internal/content"
	"hostup.co.in/hostup-web/internal/format"
	"hostup.co.in/hostup-web/internal/middleware"
	"hostup.co.in/hostup-web/internal/nav"
	"hostup.co.in/hostup-web/internal/seo"
)

// PageData is the view model for every page using the shared layout.
type PageData struct {
	Title     string
	SEO       seo.Meta
	Analytics Analytics
	Business  BusinessInfo

	Path        string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb

	CSRFToken       string
	Flashes         []middleware.Flash
	NoticeDismissMs int64
	Chat            ChatWidget
	Year            int

	// Optional per-page payloads
	Page    content.Page
	Site    content.Site
	FAQs    []content.FAQ
	Contact any
	Booking any
	Status  *StatusView
}

// BusinessInfo is the contact block shown in the header, footer and chat.
type BusinessInfo struct {
	Name     string
	Email    string
	WhatsApp Phone
	Support  []Phone
}

// Phone is a WhatsApp-reachable number with its display form.
type Phone struct {
	Number  string
	Display string
	URL     string
}

// ChatWidget configures the chat launcher.
type ChatWidget struct {
	QuickOptions []string
}

// StatusView backs the 404 and 500 pages.
type StatusView struct {
	Code    int
	Heading string
	Message string
	// RequestID is shown on server errors so visitors can quote it.
	RequestID string
}

// NewBusinessInfo builds the contact block from digit-only phone numbers.
func NewBusinessInfo(name, email, whatsapp string, support []string) BusinessInfo {
	info := BusinessInfo{Name: name, Email: email, WhatsApp: NewPhone(whatsapp)}
	for _, n := range support {
		if n != "" {
			info.Support = append(info.Support, NewPhone(n))
		}
	}
	return info
}

func NewPhone(number string) Phone {
	return Phone{
		Number:  number,
		Display: format.FmtPhoneIN(number),
		URL:     "https://wa.me/" + number,
	}
}
