package booking

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRequest(notes string) Request {
	return Request{
		Date:      Day{Year: 2026, Month: time.October, Day: 20},
		DateLabel: "Tuesday, October 20, 2026",
		Time:      "11:00 AM",
		Contact: Contact{
			Name:     "Asha Verma",
			Email:    "asha@example.com",
			Phone:    "+91 98765 43210",
			Location: "delhi",
			Notes:    notes,
		},
	}
}

func TestMailtoLinkEncodesSubjectAndBody(t *testing.T) {
	t.Parallel()

	links := BuildLinks(testBusiness, sampleRequest(""))
	require.True(t, strings.HasPrefix(links.Email, "mailto:hostup.co.in@gmail.com?subject="))

	raw := strings.TrimPrefix(links.Email, "mailto:hostup.co.in@gmail.com?")
	q, err := url.ParseQuery(raw)
	require.NoError(t, err)
	assert.Equal(t, "Consultation Request - Asha Verma - Tuesday, October 20, 2026", q.Get("subject"))

	body := q.Get("body")
	assert.True(t, strings.HasPrefix(body, "Hi HostUp Team,\n\n"))
	assert.Contains(t, body, "Property Location: Delhi\n")
	assert.NotContains(t, body, "Additional Notes")
	assert.True(t, strings.HasSuffix(body, "Best regards,\nAsha Verma"))
}

func TestWhatsAppMessageNotesLine(t *testing.T) {
	t.Parallel()

	with := ComposeWhatsAppMessage(testBusiness, sampleRequest("Needs deep clean"))
	without := ComposeWhatsAppMessage(testBusiness, sampleRequest(""))

	assert.Contains(t, with, "📝 Notes: Needs deep clean\n\n")
	assert.NotContains(t, without, "Notes:")
	assert.NotContains(t, without, "\n\n\n")
	assert.True(t, strings.HasPrefix(without, "Hi HostUp Team!"))
}

func TestLinksWithoutPayload(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://wa.me/919317210055", WhatsAppLink("+919317210055", ""))
	assert.Equal(t, "mailto:hello@example.com", MailtoLink("hello@example.com", "", ""))
	assert.Equal(t, "a%20b%26c%3Dd", encodeComponent("a b&c=d"))
	assert.Equal(t, "Team", teamName(Business{}))
}
