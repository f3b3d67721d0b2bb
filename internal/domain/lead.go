package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Lead is an archived contact submission.
type Lead struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	ClientIP  string    `json:"client_ip"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}

type LeadRepository interface {
	Create(ctx context.Context, lead *Lead) error
}
