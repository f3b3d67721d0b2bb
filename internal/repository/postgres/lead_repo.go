package postgres

import (
	"context"
	"fmt"

	"portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

// Execer is the subset of *pgxpool.Pool the lead archive needs.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type leadRepo struct {
	db Execer
}

func NewLeadRepository(db Execer) domain.LeadRepository {
	return &leadRepo{db: db}
}

func (r *leadRepo) Create(ctx context.Context, lead *domain.Lead) error {
	query := `INSERT INTO contact_leads (id, name, email, message, client_ip, user_agent, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		lead.ID, lead.Name, lead.Email, lead.Message, lead.ClientIP, lead.UserAgent, lead.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead %s: %w", lead.ID, err)
	}
	return nil
}
