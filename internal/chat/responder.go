// Package chat answers visitor messages in the site chat widget with canned
// replies: exact quick-option labels first, then ordered keyword rules.
package chat

import (
	"context"
	"html/template"
	"strings"
	"time"

	"hostup.co.in/hostup-web/internal/format"
)

// DefaultLatency is the simulated typing delay before a reply is shown.
const DefaultLatency = 500 * time.Millisecond

// Topic names the kind of reply produced.
type Topic string

const (
	TopicConsultation Topic = "consultation"
	TopicPricing      Topic = "pricing"
	TopicProperty     Topic = "property"
	TopicOnboarding   Topic = "onboarding"
	TopicRevenue      Topic = "revenue"
	TopicSupport      Topic = "support"
	TopicServices     Topic = "services"
	TopicContact      Topic = "contact"
	TopicCities       Topic = "cities"
	TopicMenu         Topic = "menu"
	TopicFallback     Topic = "fallback"
)

// Path records how a reply was chosen.
type Path string

const (
	PathQuick   Path = "quick"
	PathKeyword Path = "keyword"
)

// Quick option labels as rendered on the widget buttons.
const (
	QuickConsultation = "📅 Schedule Free Consultation"
	QuickPricing      = "💰 Learn About Pricing"
	QuickProperty     = "🏠 Property Requirements"
	QuickOnboarding   = "🚀 How to Get Started"
	QuickRevenue      = "💵 Revenue Potential"
	QuickSupport      = "📱 WhatsApp Support"
)

// Contacts are the contact points embedded in replies.
type Contacts struct {
	WhatsApp  string
	Secondary string
	Email     string
}

// Rule maps a set of lower-case keywords to a reply. A rule matches when any
// keyword is a substring of the lower-cased message.
type Rule struct {
	Topic    Topic
	Keywords []string
	HTML     template.HTML
}

// Matches reports whether lower contains one of the rule keywords.
func (r Rule) Matches(lower string) bool {
	for _, k := range r.Keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// Reply is a rendered bot answer.
type Reply struct {
	Topic Topic
	Path  Path
	HTML  template.HTML
}

// Message is a visitor message. Quick marks a tap on a quick-option button.
type Message struct {
	Text  string
	Quick bool
}

type quickOption struct {
	label string
	topic Topic
	html  template.HTML
}

// Responder picks canned replies. It is safe for concurrent use.
type Responder struct {
	quick    []quickOption
	rules    []Rule
	menu     template.HTML
	fallback template.HTML
	latency  time.Duration
}

// Option customises a Responder.
type Option func(*Responder)

// WithLatency sets the simulated delay applied by Answer. Negative values
// are treated as zero.
func WithLatency(d time.Duration) Option {
	return func(r *Responder) {
		if d < 0 {
			d = 0
		}
		r.latency = d
	}
}

// NewResponder builds a Responder whose replies link to c.
func NewResponder(c Contacts, opts ...Option) *Responder {
	wa := digits(c.WhatsApp)
	wa2 := digits(c.Secondary)
	if wa2 == "" {
		wa2 = wa
	}
	rep := strings.NewReplacer(
		"{{wa}}", wa,
		"{{wa2}}", wa2,
		"{{wa_display}}", format.FmtPhoneIN(wa),
		"{{wa2_display}}", format.FmtPhoneIN(wa2),
		"{{email}}", c.Email,
	)
	fill := func(s string) template.HTML { return template.HTML(rep.Replace(s)) }

	r := &Responder{
		quick: []quickOption{
			{QuickConsultation, TopicConsultation, fill(replyQuickConsultation)},
			{QuickPricing, TopicPricing, fill(replyQuickPricing)},
			{QuickProperty, TopicProperty, fill(replyQuickProperty)},
			{QuickOnboarding, TopicOnboarding, fill(replyOnboarding)},
			{QuickRevenue, TopicRevenue, fill(replyRevenue)},
			{QuickSupport, TopicSupport, fill(replyQuickSupport)},
		},
		// Order matters: the first matching rule wins.
		rules: []Rule{
			{TopicPricing, []string{"price", "cost", "fee", "commission", "charge"}, fill(replyPricing)},
			{TopicConsultation, []string{"consultation", "meeting", "discuss", "talk"}, fill(replyConsultation)},
			{TopicProperty, []string{"property", "requirement", "eligible", "qualify", "apartment", "villa", "house"}, fill(replyProperty)},
			{TopicOnboarding, []string{"start", "begin", "onboard", "join", "signup"}, fill(replyOnboarding)},
			{TopicServices, []string{"service", "what do you do", "help", "manage"}, fill(replyServices)},
			{TopicRevenue, []string{"revenue", "earn", "income", "profit", "money"}, fill(replyRevenue)},
			{TopicContact, []string{"contact", "support", "help", "phone", "call"}, fill(replyContact)},
			{TopicCities, []string{"city", "location", "jaipur", "delhi", "mumbai", "where"}, fill(replyCities)},
		},
		menu:     fill(replyMenu),
		fallback: fill(replyFallback),
		latency:  DefaultLatency,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// QuickOptions returns the quick-option labels in display order.
func (r *Responder) QuickOptions() []string {
	out := make([]string, len(r.quick))
	for i, q := range r.quick {
		out[i] = q.label
	}
	return out
}

// Latency returns the configured simulated delay.
func (r *Responder) Latency() time.Duration { return r.latency }

// Quick returns the reply for an exact quick-option label. Unknown labels
// get the generic hand-off reply.
func (r *Responder) Quick(label string) Reply {
	for _, q := range r.quick {
		if q.label == label {
			return Reply{Topic: q.topic, Path: PathQuick, HTML: q.html}
		}
	}
	return Reply{Topic: TopicFallback, Path: PathQuick, HTML: r.fallback}
}

// Match runs the keyword rules against free text. Messages matching no rule
// get the default menu.
func (r *Responder) Match(text string) Reply {
	lower := strings.ToLower(text)
	for _, rule := range r.rules {
		if rule.Matches(lower) {
			return Reply{Topic: rule.Topic, Path: PathKeyword, HTML: rule.HTML}
		}
	}
	return Reply{Topic: TopicMenu, Path: PathKeyword, HTML: r.menu}
}

// Resolve picks a reply without any delay.
func (r *Responder) Resolve(m Message) Reply {
	if m.Quick {
		return r.Quick(m.Text)
	}
	return r.Match(m.Text)
}

// Answer resolves m after the configured latency. If ctx ends first the
// reply is dropped and ctx.Err() is returned.
func (r *Responder) Answer(ctx context.Context, m Message) (Reply, error) {
	reply := r.Resolve(m)
	if r.latency <= 0 {
		if err := ctx.Err(); err != nil {
			return Reply{}, err
		}
		return reply, nil
	}
	timer := time.NewTimer(r.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return Reply{}, ctx.Err()
	case <-timer.C:
		return reply, nil
	}
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
