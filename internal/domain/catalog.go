package domain

import "context"

type ServiceTier struct {
	Name          string `json:"name"`
	Price         int    `json:"price"`
	Description   string `json:"description"`
	BillingSuffix string `json:"billing_suffix,omitempty"`
}

type ServicePackage struct {
	Name         string        `json:"name"`
	Pitch        string        `json:"pitch"`
	Deliverables []string      `json:"deliverables"`
	Timeline     string        `json:"timeline"`
	IdealFor     string        `json:"ideal_for"`
	Tiers        []ServiceTier `json:"tiers"`
	Badge        string        `json:"badge,omitempty"`
}

type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role"`
}

type CatalogUsecase interface {
	ListServices(ctx context.Context) []ServicePackage
	ListTestimonials(ctx context.Context) []Testimonial
}
