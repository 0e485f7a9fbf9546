package booking

import (
	"net/url"
	"strings"
)

// Business carries the fixed contact points the links point at.
type Business struct {
	Name           string
	WhatsAppNumber string // digits only, country code first
	Email          string
}

// Links are the deep links handed to the browser after a submission.
type Links struct {
	WhatsApp string
	Email    string
}

// BuildLinks composes both deep links for req.
func BuildLinks(biz Business, req Request) Links {
	subject, body := ComposeEmail(biz, req)
	return Links{
		WhatsApp: WhatsAppLink(biz.WhatsAppNumber, ComposeWhatsAppMessage(biz, req)),
		Email:    MailtoLink(biz.Email, subject, body),
	}
}

// WhatsAppLink returns a wa.me link that opens a chat with text pre-filled.
func WhatsAppLink(number, text string) string {
	link := "https://wa.me/" + strings.TrimPrefix(strings.TrimSpace(number), "+")
	if text == "" {
		return link
	}
	return link + "?text=" + encodeComponent(text)
}

// MailtoLink returns a mailto link with subject and body pre-filled.
func MailtoLink(addr, subject, body string) string {
	var params []string
	if subject != "" {
		params = append(params, "subject="+encodeComponent(subject))
	}
	if body != "" {
		params = append(params, "body="+encodeComponent(body))
	}
	link := "mailto:" + strings.TrimSpace(addr)
	if len(params) == 0 {
		return link
	}
	return link + "?" + strings.Join(params, "&")
}

// ComposeWhatsAppMessage renders the chat message for req.
func ComposeWhatsAppMessage(biz Business, req Request) string {
	c := req.Contact
	var b strings.Builder
	b.WriteString("Hi " + teamName(biz) + "!\n\n")
	b.WriteString("I'd like to schedule a free consultation:\n\n")
	b.WriteString("📅 Preferred Date & Time: " + req.DateLabel + " at " + req.Time + "\n\n")
	b.WriteString("👤 Contact Details:\n")
	b.WriteString("Name: " + c.Name + "\n")
	b.WriteString("Email: " + c.Email + "\n")
	b.WriteString("Phone: " + c.Phone + "\n\n")
	b.WriteString("🏠 Property Location: " + LocationLabel(c.Location) + "\n\n")
	if c.Notes != "" {
		b.WriteString("📝 Notes: " + c.Notes + "\n\n")
	}
	b.WriteString("Please confirm this slot or suggest alternative times. Looking forward to discussing my property's potential!")
	return b.String()
}

// ComposeEmail renders the e-mail subject and body for req.
func ComposeEmail(biz Business, req Request) (string, string) {
	c := req.Contact
	subject := "Consultation Request - " + c.Name + " - " + req.DateLabel

	var b strings.Builder
	b.WriteString("Hi " + teamName(biz) + ",\n\n")
	b.WriteString("I've scheduled a consultation through your calendar system:\n\n")
	b.WriteString("Preferred Date & Time: " + req.DateLabel + " at " + req.Time + "\n\n")
	b.WriteString("Contact Details:\n")
	b.WriteString("Name: " + c.Name + "\n")
	b.WriteString("Email: " + c.Email + "\n")
	b.WriteString("Phone: " + c.Phone + "\n")
	b.WriteString("Property Location: " + LocationLabel(c.Location) + "\n\n")
	if c.Notes != "" {
		b.WriteString("Additional Notes: " + c.Notes + "\n\n")
	}
	b.WriteString("Please confirm this appointment or suggest alternative times.\n\n")
	b.WriteString("Best regards,\n" + c.Name)
	return subject, b.String()
}

func teamName(biz Business) string {
	name := strings.TrimSpace(biz.Name)
	if name == "" {
		return "Team"
	}
	return name + " Team"
}

// encodeComponent escapes s for a query value the way browsers' encodeURIComponent
// does for spaces (%20 rather than +).
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
