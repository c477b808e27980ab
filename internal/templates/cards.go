package templates

import "github.com/imamik/create-bluewaves-app/internal/config"

// Card is one feature card on the synthesized landing page.
type Card struct {
	Title       string
	Description string
	Body        string
}

var templateCards = map[config.Template][]Card{
	config.TemplateMinimal: {
		{"Next.js 15", "Latest Next.js with App Router", "Server Components, optimized bundling, and fast page loads."},
		{"Surfer Design System", "Design system ready to use", "OKLCH colors, enhanced components, and performance-first architecture."},
		{"shadcn/ui", "Complete component library installed", "25+ components ready to use with full customization control."},
	},
	config.TemplateDashboard: {
		{"Dashboard Ready", "Admin interface components", "Tables, charts, forms, and navigation in one place."},
		{"Data Visualization", "Charts and graphs", "Responsive chart layouts with dark mode support."},
		{"Authentication", "User management built-in", "Login, signup, and protected routes with modern auth patterns."},
	},
	config.TemplateSaaS: {
		{"SaaS Ready", "Complete SaaS application structure", "Billing, subscriptions, user management, and admin dashboard."},
		{"Payments", "Stripe integration ready", "Subscription management, billing portal, and payment flows."},
		{"Email & Notifications", "Communication system built-in", "Transactional emails, in-app notifications, and user onboarding."},
	},
	config.TemplateEcommerce: {
		{"Product Catalog", "Products, variants and collections", "Browse, filter and search with accessible product cards."},
		{"Cart & Checkout", "Conversion-focused purchase flow", "Persistent cart, guest checkout, and order confirmation screens."},
		{"Order Management", "Back-office essentials", "Track orders, inventory and fulfilment from a single table view."},
	},
	config.TemplateLanding: {
		{"Hero Sections", "First impressions that convert", "Animated hero layouts with clear calls to action."},
		{"Social Proof", "Testimonials and logos", "Customer quotes, ratings and logo walls that build trust."},
		{"Lead Capture", "Forms wired for growth", "Validated signup forms with toast feedback and pricing tables."},
	},
}

// CardsFor returns the feature cards of t. Unknown templates get the
// minimal cards.
func CardsFor(t config.Template) []Card {
	if cards, ok := templateCards[t]; ok {
		return cards
	}
	return templateCards[config.TemplateMinimal]
}
