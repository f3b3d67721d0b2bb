package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio-backend/internal/domain"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLead() *domain.Lead {
	return &domain.Lead{
		ID:        uuid.MustParse("6f1c2d1e-8f0a-4b7e-9a55-3c2b1d0e9f11"),
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Message:   "Hello there, this is a valid message.",
		ClientIP:  "203.0.113.7",
		UserAgent: "curl/8.0",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestLeadRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	lead := sampleLead()
	mock.ExpectExec("INSERT INTO contact_leads").
		WithArgs(lead.ID, lead.Name, lead.Email, lead.Message, lead.ClientIP, lead.UserAgent, lead.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := NewLeadRepository(mock)
	require.NoError(t, repo.Create(context.Background(), lead))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadRepo_CreateError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO contact_leads").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("relation does not exist"))

	err = NewLeadRepository(mock).Create(context.Background(), sampleLead())
	assert.ErrorContains(t, err, "relation does not exist")
	assert.NoError(t, mock.ExpectationsWereMet())
}
