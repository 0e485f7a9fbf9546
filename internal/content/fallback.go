package content

// Built-in copy used when the content directory lacks a file.

var fallbackPages = map[string]string{
	"home": `---
title: Airbnb Property Management in Jaipur, Delhi & Mumbai
summary: HostUp runs your short-stay rental end to end so you earn more with less effort.
---
We list, price, clean and care for your home while you collect the income.
`,
	"about": `---
title: About HostUp
summary: A local team managing short-stay homes across Jaipur, Delhi and Mumbai.
---
HostUp started with one apartment in Jaipur and a simple promise: treat every
owner's home like our own. Today our team handles listings, guests, pricing and
housekeeping for homes across three cities.

## What we believe

- Owners should earn more without giving up their weekends.
- Guests deserve a spotless, well-run stay.
- Fees should only be paid when bookings are confirmed.
`,
	"services": `---
title: Our Services
summary: Complete Airbnb management from listing setup to monthly earnings reports.
---
Every plan includes the full service list below. There are no upfront fees.
`,
	"testimonials": `---
title: What Our Owners Say
summary: Property owners across Jaipur, Delhi and Mumbai on working with HostUp.
---
Real feedback from owners whose homes we manage.
`,
	"faqs": `---
title: Frequently Asked Questions
summary: Answers about pricing, onboarding and how HostUp manages your property.
---
Can't find your answer? Ask the chat assistant or send us a message.
`,
	"contact": `---
title: Contact Us
summary: Talk to the HostUp team about managing your property.
---
Tell us about your property and we will get back to you within 24 hours.
`,
}

var fallbackFAQs = []FAQ{
	{
		ID:       "fees",
		Question: "How much does HostUp charge?",
		Answer:   "We charge a **15-25% commission** on confirmed bookings. There are no upfront fees or hidden charges.",
	},
	{
		ID:       "cities",
		Question: "Which cities do you serve?",
		Answer:   "We currently manage properties in **Jaipur**, **Delhi** and **Mumbai**.",
	},
	{
		ID:       "eligibility",
		Question: "What kind of property qualifies?",
		Answer:   "Furnished, guest-ready homes from studios to 4-bedroom villas with proper documentation and easy check-in access.",
	},
	{
		ID:       "onboarding",
		Question: "How long does onboarding take?",
		Answer:   "Most homes go live within a week of the free consultation: assessment, strategy, listing setup, then launch.",
	},
	{
		ID:       "payouts",
		Question: "How do I get paid?",
		Answer:   "Earnings are paid out monthly together with a detailed performance report.",
	},
}

var fallbackSite = Site{
	Tagline: "Maximize your Airbnb earnings with expert management.",
	Stats: []Stat{
		{Label: "Properties Managed", Value: 50, Suffix: "+"},
		{Label: "Average Revenue Increase", Value: 35, Suffix: "%"},
		{Label: "Occupancy Rate", Value: 75, Suffix: "%"},
		{Label: "Happy Guests", Value: 1200, Suffix: "+"},
	},
	Services: []Service{
		{Title: "Airbnb Listing Setup & Optimization", Icon: "🏠", Summary: "Professional listings with SEO optimization."},
		{Title: "24/7 Guest Communication", Icon: "💬", Summary: "Round-the-clock support in English and Hindi."},
		{Title: "Smart Pricing & Revenue Management", Icon: "📈", Summary: "Daily price optimization using market data."},
		{Title: "Calendar & Booking Management", Icon: "📅", Summary: "Multi-platform synchronization."},
		{Title: "Vendor Coordination", Icon: "🧹", Summary: "Cleaning, maintenance and laundry services."},
		{Title: "Review & Superhost Strategy", Icon: "⭐", Summary: "Guest experience optimization."},
		{Title: "Monthly Earnings Reports", Icon: "📊", Summary: "Detailed performance analytics."},
	},
	Testimonials: []Testimonial{
		{Name: "Rajesh Sharma", Role: "Owner, 2BHK apartment", City: "Jaipur", Quote: "Bookings doubled within three months and I no longer answer guest calls at midnight.", Rating: 5},
		{Name: "Priya Mehta", Role: "Owner, studio", City: "Mumbai", Quote: "Transparent reports every month and the place is always spotless.", Rating: 5},
		{Name: "Arjun Kapoor", Role: "Owner, villa", City: "Delhi", Quote: "Their pricing strategy lifted my revenue by a third.", Rating: 5},
	},
	Cities: []City{
		{Key: "jaipur", Name: "Jaipur", Blurb: "The Pink City's rich heritage and royal palaces."},
		{Key: "delhi", Name: "Delhi", Blurb: "The capital's blend of business travelers and cultural tourists."},
		{Key: "mumbai", Name: "Mumbai", Blurb: "India's financial capital with year-round demand."},
	},
}
