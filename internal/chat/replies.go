package chat

// Canned reply bodies. {{wa}}, {{wa2}} and {{email}} are replaced with the
// configured contact points when a Responder is built.

const (
	replyQuickConsultation = `Perfect! Our free consultation includes:<br>• <strong>Property assessment</strong> &amp; market analysis<br>• <strong>Revenue potential</strong> estimation<br>• <strong>Customized management</strong> plan<br>• <strong>No obligations</strong> - completely free!<br><br><a href="mailto:{{email}}?subject=Free%20Consultation%20Request" class="text-gold hover:underline font-semibold">📧 Email us</a> or <a href="https://wa.me/{{wa}}?text=Hi%20HostUp!%20I%27d%20like%20to%20schedule%20a%20free%20consultation%20for%20my%20property." class="text-gold hover:underline font-semibold">💬 WhatsApp directly</a>`

	replyQuickPricing = `Our transparent pricing structure:<br>• <strong>15-25% commission</strong> on confirmed bookings (negotiable based on property)<br>• <strong>No upfront fees</strong> or hidden charges<br>• <strong>All services included:</strong> listing setup, guest management, pricing optimization, cleaning coordination<br>• <strong>We only earn when you earn</strong><br><br><a href="https://wa.me/{{wa}}?text=Hi!%20I%27d%20like%20to%20know%20more%20about%20your%20pricing%20for%20my%20property." class="text-gold hover:underline font-semibold">Get personalized quote</a>`

	replyQuickProperty = `We work with properties in <strong>Jaipur, Delhi, and Mumbai</strong> that meet these criteria:<br>• <strong>Size:</strong> 1-4 bedrooms (studios to villas)<br>• <strong>Condition:</strong> Fully furnished &amp; guest-ready<br>• <strong>Legal:</strong> Proper documentation &amp; permissions<br>• <strong>Access:</strong> Easy check-in/check-out<br><br>What type of property do you have?`

	replyOnboarding = `Getting started is simple! Here's our process:<br>1. <strong>Free consultation</strong> &amp; property assessment<br>2. <strong>Customized strategy</strong> development<br>3. <strong>Listing setup</strong> &amp; optimization<br>4. <strong>Go live</strong> and start earning!<br><br><a href="https://wa.me/{{wa}}?text=Hi%20HostUp!%20I%27d%20like%20to%20get%20started%20with%20your%20services." class="text-gold hover:underline font-semibold">Start your journey</a>`

	replyRevenue = `Our clients typically see:<br>• <strong>35% average revenue increase</strong><br>• <strong>75% occupancy rate</strong><br>• <strong>4.7+ star ratings</strong><br>• <strong>Consistent monthly income</strong><br><br>Results vary by property type and location. <a href="https://wa.me/{{wa}}?text=Hi!%20I%27d%20like%20to%20know%20the%20revenue%20potential%20for%20my%20property." class="text-gold hover:underline font-semibold">Get your property's potential</a>`

	replyQuickSupport = `Get instant expert help! Our team responds within minutes:<br>• <strong>Property assessment</strong><br>• <strong>Pricing questions</strong><br>• <strong>Technical support</strong><br>• <strong>Booking issues</strong><br><br><a href="https://wa.me/{{wa}}" class="text-gold hover:underline font-semibold">💬 {{wa_display}}</a> or <a href="https://wa.me/{{wa2}}" class="text-gold hover:underline font-semibold">💬 {{wa2_display}}</a>`

	replyPricing = `Our pricing is transparent and flexible:<br>• <strong>15-25% commission</strong> on confirmed bookings (negotiable based on property)<br>• <strong>No upfront fees</strong> or hidden charges<br>• <strong>All services included:</strong> listing setup, guest management, pricing optimization, cleaning coordination<br>• <strong>We only earn when you earn</strong><br><br><a href="https://wa.me/{{wa}}?text=Hi!%20I%27d%20like%20to%20know%20more%20about%20your%20pricing%20for%20my%20property." class="text-gold hover:underline font-semibold">Get your personalized quote</a>`

	replyConsultation = `Great choice! Our free consultation includes:<br>• <strong>Property assessment</strong> &amp; market analysis<br>• <strong>Revenue potential</strong> estimation<br>• <strong>Customized strategy</strong> for your property<br>• <strong>No obligations</strong> - completely free!<br><br><a href="mailto:{{email}}?subject=Free%20Consultation%20Request" class="text-gold hover:underline font-semibold">📧 Email us</a> or <a href="https://wa.me/{{wa}}?text=Hi%20HostUp!%20I%27d%20like%20to%20schedule%20a%20free%20consultation." class="text-gold hover:underline font-semibold">💬 WhatsApp directly</a>`

	replyProperty = `We work with properties in <strong>Jaipur, Delhi, and Mumbai</strong> that meet these criteria:<br>• <strong>Size:</strong> 1-4 bedrooms (studios to villas)<br>• <strong>Condition:</strong> Fully furnished &amp; guest-ready<br>• <strong>Legal:</strong> Proper documentation &amp; permissions<br>• <strong>Access:</strong> Easy check-in/check-out<br><br>What type of property do you have? <a href="https://wa.me/{{wa}}?text=Hi!%20I%27d%20like%20to%20know%20if%20my%20property%20qualifies%20for%20your%20services." class="text-gold hover:underline font-semibold">Share details</a>`

	replyServices = `We provide complete Airbnb management:<br>• <strong>Airbnb Listing Setup &amp; Optimization</strong> - Professional listings with SEO optimization<br>• <strong>24/7 Guest Communication</strong> - Round-the-clock support in English and Hindi<br>• <strong>Smart Pricing &amp; Revenue Management</strong> - Daily price optimization using market data<br>• <strong>Calendar &amp; Booking Management</strong> - Multi-platform synchronization<br>• <strong>Vendor Coordination</strong> - Cleaning, maintenance, and laundry services<br>• <strong>Review &amp; Superhost Strategy</strong> - Guest experience optimization<br>• <strong>Monthly Earnings Reports</strong> - Detailed performance analytics<br><br><a href="/services" class="text-gold hover:underline font-semibold">Learn more about our services</a>`

	replyContact = `We're here to help! Contact us via:<br>• <strong>WhatsApp:</strong> <a href="https://wa.me/{{wa}}" class="text-gold hover:underline font-semibold">{{wa_display}}</a> or <a href="https://wa.me/{{wa2}}" class="text-gold hover:underline font-semibold">{{wa2_display}}</a><br>• <strong>Email:</strong> <a href="mailto:{{email}}" class="text-gold hover:underline font-semibold">{{email}}</a><br>• <strong>Response time:</strong> Within minutes on WhatsApp<br><br>Choose your preferred method!`

	replyCities = `We currently serve three major Indian cities:<br>• <strong>Jaipur</strong> - The Pink City's rich heritage and royal palaces<br>• <strong>Delhi</strong> - The capital's blend of business travelers and cultural tourists<br>• <strong>Mumbai</strong> - India's financial capital with year-round demand<br><br>We're planning to expand to Bangalore, Goa, and Udaipur. <a href="https://wa.me/{{wa}}?text=Hi!%20I%27d%20like%20to%20know%20more%20about%20your%20services%20in%20my%20city." class="text-gold hover:underline font-semibold">Check if we serve your city</a>`

	replyMenu = `Thanks for your message! I'm here to help with:<br>• <strong>Pricing &amp; commission</strong> details<br>• <strong>Property requirements</strong> &amp; eligibility<br>• <strong>Free consultation</strong> scheduling<br>• <strong>Getting started</strong> process<br>• <strong>Services</strong> we offer<br>• <strong>Cities</strong> we serve<br><br>For immediate assistance, <a href="https://wa.me/{{wa}}" class="text-gold hover:underline font-semibold">WhatsApp our team</a> or ask me a specific question!`

	replyFallback = `I'll connect you with our team for personalized assistance. Please use the WhatsApp link below!`
)
