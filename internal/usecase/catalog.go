package usecase

import (
	"context"
	"slices"

	"portfolio-backend/internal/domain"
)

var servicePackages = []domain.ServicePackage{
	{
		Name:  "Launch Essentials",
		Pitch: "Design and ship a polished marketing site that earns trust from day one.",
		Deliverables: []string{
			"Discovery session to clarify offer, audience, and success metric",
			"Responsive homepage, services, and contact flow built in Next.js",
			"Foundational SEO, analytics, and accessibility checks",
			"Content entry and copy polish for up to five sections",
			"Launch checklist, Loom walkthrough, and handover notes",
		},
		Timeline: "2-3 weeks from kickoff",
		IdealFor: "Independent founders or small teams launching their first site",
		Tiers: []domain.ServiceTier{
			{Name: "Starter", Price: 1800, Description: "Single-page site covering your offer, proof, and clear contact path."},
			{Name: "Plus", Price: 2300, Description: "Up to five sections with lead capture, scheduling integration, and CMS-ready content slots."},
		},
		Badge: "Starter-friendly",
	},
	{
		Name:  "Conversion Refresh",
		Pitch: "Level-up an existing site with clearer messaging, faster load times, and stronger CTAs.",
		Deliverables: []string{
			"Audit of current site performance, accessibility, and content",
			"Updated hero, services, and proof sections focused on conversions",
			"Lightweight component library for reusable sections",
			"Performance and accessibility improvements with before/after report",
			"Analytics event review and recommendations",
		},
		Timeline: "3-4 weeks including revisions",
		IdealFor: "Growing small businesses that need their site to work harder",
		Tiers: []domain.ServiceTier{
			{Name: "Starter", Price: 2500, Description: "Conversion-focused refresh for three key sections plus copy updates."},
			{Name: "Plus", Price: 3200, Description: "Includes component upgrades, page speed fixes, analytics event revamp, and QA support for launch."},
		},
		Badge: "Most popular",
	},
	{
		Name:  "Growth Support",
		Pitch: "Ongoing design and development help to keep shipping pages and product tweaks.",
		Deliverables: []string{
			"Monthly planning session to prioritise experiments and fixes",
			"Up to 20 hours of design + development support per month",
			"Landing page iterations, feature polish, or technical cleanup",
			"Async status updates, Loom walkthroughs, and shared backlog",
			"Unused hours roll over for one month so nothing is wasted",
		},
		Timeline: "Booked month-to-month",
		IdealFor: "Small teams that need flexible help without a full-time hire",
		Tiers: []domain.ServiceTier{
			{Name: "Starter", Price: 700, BillingSuffix: " / month", Description: "Up to 10 hours for quick iterations, landing page edits, or bug fixes."},
			{Name: "Plus", Price: 1200, BillingSuffix: " / month", Description: "Up to 20 hours with priority responses, experiment support, and rollover buffer."},
		},
		Badge: "Best value",
	},
}

var testimonials = []domain.Testimonial{
	{
		Quote:  "Amina translated messy product asks into a polished release, and her accessibility sweeps saved us multiple rounds of QA.",
		Author: "Lisa Dunn",
		Role:   "Head of Product, Relay CRM",
	},
	{
		Quote:  "She shipped our marketing site in three weeks with analytics wired up and documentation the team still relies on.",
		Author: "Carlos Mendes",
		Role:   "Founder, Launchpad Studio",
	},
	{
		Quote:  "Expect thoughtful questions, pragmatic decisions, and progress updates before you need to ask for them.",
		Author: "Naomi Chen",
		Role:   "COO, Stellar Labs",
	},
}

type catalogUsecase struct{}

func NewCatalogUsecase() domain.CatalogUsecase {
	return &catalogUsecase{}
}

// ListServices returns a copy so callers cannot mutate the catalog.
func (u *catalogUsecase) ListServices(ctx context.Context) []domain.ServicePackage {
	return slices.Clone(servicePackages)
}

func (u *catalogUsecase) ListTestimonials(ctx context.Context) []domain.Testimonial {
	return slices.Clone(testimonials)
}
