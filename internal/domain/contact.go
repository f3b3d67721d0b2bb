package domain

import "context"

// ContactRequest is the body of POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name" validate:"min=2"`
	Email   string `json:"email" validate:"email"`
	Message string `json:"message" validate:"min=10,max=2000"`

	// Filled in by the handler, never bound from JSON.
	ClientIP  string `json:"-"`
	UserAgent string `json:"-"`
}

// ContactUsecase validates a submission and notifies the site owner.
type ContactUsecase interface {
	SendContactMessage(ctx context.Context, req *ContactRequest) error
}
