package chat

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testContacts = Contacts{
	WhatsApp:  "+91 98197 26493",
	Secondary: "919317210055",
	Email:     "hostup.co.in@gmail.com",
}

func TestMatchKeywordRules(t *testing.T) {
	t.Parallel()

	r := NewResponder(testContacts)
	cases := []struct {
		text string
		want Topic
	}{
		{"What is your fee?", TopicPricing},
		{"I want to start", TopicOnboarding},
		{"asdfghjkl", TopicMenu},
		{"", TopicMenu},
		{"Can we have a MEETING?", TopicConsultation},
		{"Is my villa eligible", TopicProperty},
		{"how much can I earn", TopicRevenue},
		{"call me", TopicContact},
		{"Do you work in Jaipur", TopicCities},
		// "help" is listed under both services and contact; services is earlier.
		{"I need help", TopicServices},
		// pricing outranks everything else.
		{"price for my apartment in delhi", TopicPricing},
	}
	for _, tc := range cases {
		got := r.Match(tc.text)
		assert.Equalf(t, tc.want, got.Topic, "Match(%q)", tc.text)
		assert.Equal(t, PathKeyword, got.Path)
	}

	pricing := r.Match("What is your fee?")
	assert.Contains(t, string(pricing.HTML), "commission")
}

func TestQuickOptionsAreExact(t *testing.T) {
	t.Parallel()

	r := NewResponder(testContacts)
	require.Len(t, r.QuickOptions(), 6)
	assert.Equal(t, QuickConsultation, r.QuickOptions()[0])

	got := r.Quick("💰 Learn About Pricing")
	assert.Equal(t, TopicPricing, got.Topic)
	assert.Equal(t, PathQuick, got.Path)
	assert.True(t, strings.HasPrefix(string(got.HTML), "Our transparent pricing structure:<br>• <strong>15-25% commission</strong>"))

	// Labels are matched exactly, not by keyword.
	miss := r.Quick("learn about pricing")
	assert.Equal(t, TopicFallback, miss.Topic)
	assert.Equal(t, "I'll connect you with our team for personalized assistance. Please use the WhatsApp link below!", string(miss.HTML))
}

func TestRepliesCarryContacts(t *testing.T) {
	t.Parallel()

	r := NewResponder(testContacts)
	contact := string(r.Match("contact").HTML)
	assert.Contains(t, contact, "https://wa.me/919819726493")
	assert.Contains(t, contact, "https://wa.me/919317210055")
	assert.Contains(t, contact, "+91 98197 26493")
	assert.Contains(t, contact, "mailto:hostup.co.in@gmail.com")
	assert.NotContains(t, contact, "{{")

	single := NewResponder(Contacts{WhatsApp: "919819726493"})
	assert.NotContains(t, string(single.Quick(QuickSupport).HTML), "https://wa.me/\"")
}

func TestAnswerWaitsForLatency(t *testing.T) {
	t.Parallel()

	r := NewResponder(testContacts, WithLatency(20*time.Millisecond))
	start := time.Now()
	got, err := r.Answer(context.Background(), Message{Text: QuickRevenue, Quick: true})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, TopicRevenue, got.Topic)
}

func TestAnswerDroppedWhenContextEnds(t *testing.T) {
	t.Parallel()

	r := NewResponder(testContacts, WithLatency(time.Hour))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := r.Answer(ctx, Message{Text: "price"})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, got.HTML)

	instant := NewResponder(testContacts, WithLatency(-1))
	assert.Zero(t, instant.Latency())
	_, err = instant.Answer(ctx, Message{Text: "price"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	got := PlainText(`a<br>b <strong>c</strong> &amp; <a href="/x">d</a>`)
	assert.Equal(t, "a\nb c & d </x>", got)

	menu := PlainText(string(NewResponder(testContacts).Match("zzz").HTML))
	assert.True(t, strings.HasPrefix(menu, "Thanks for your message! I'm here to help with:\n• Pricing & commission details"))
	assert.NotContains(t, menu, "<strong>")
}
