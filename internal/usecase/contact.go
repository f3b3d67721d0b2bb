package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/metrics"
	"portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DispatchFailedMessage is returned to the visitor when the email provider fails.
const DispatchFailedMessage = "Failed to send message. Please try again later."

// ContactConfig names the fixed parties of the owner notification.
type ContactConfig struct {
	From     string
	To       string
	SiteName string
}

type contactUsecase struct {
	dispatcher email.Dispatcher
	leads      domain.LeadRepository
	validate   *validator.Validate
	cfg        ContactConfig
	metrics    *metrics.Metrics
	log        *slog.Logger
	now        func() time.Time
}

// NewContactUsecase wires the contact flow. leads and m may be nil.
func NewContactUsecase(
	dispatcher email.Dispatcher,
	leads domain.LeadRepository,
	validate *validator.Validate,
	cfg ContactConfig,
	m *metrics.Metrics,
	log *slog.Logger,
) domain.ContactUsecase {
	if log == nil {
		log = slog.Default()
	}
	return &contactUsecase{
		dispatcher: dispatcher,
		leads:      leads,
		validate:   validate,
		cfg:        cfg,
		metrics:    m,
		log:        log,
		now:        time.Now,
	}
}

// SendContactMessage validates the request, emails the site owner and
// archives the lead.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	if err := uc.validate.Struct(req); err != nil {
		uc.metrics.ObserveSubmission(metrics.OutcomeInvalid)
		return apperror.Validation(validation.FormatFieldErrors(err))
	}

	msg := email.Message{
		From:    uc.cfg.From,
		To:      uc.cfg.To,
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("%s sent a message from %s", req.Name, uc.cfg.SiteName),
		Text:    fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", req.Name, req.Email, req.Message),
	}

	if err := uc.dispatcher.Send(ctx, msg); err != nil {
		uc.metrics.ObserveSubmission(metrics.OutcomeDispatchError)
		uc.log.ErrorContext(ctx, "contact dispatch failed", "error", err)
		return apperror.New(http.StatusInternalServerError, DispatchFailedMessage, err)
	}
	uc.metrics.ObserveSubmission(metrics.OutcomeSent)

	uc.archive(ctx, req)
	return nil
}

// archive stores the lead. Failures are logged only: the owner already has
// the email.
func (uc *contactUsecase) archive(ctx context.Context, req *domain.ContactRequest) {
	if uc.leads == nil {
		return
	}
	lead := &domain.Lead{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Message:   req.Message,
		ClientIP:  req.ClientIP,
		UserAgent: req.UserAgent,
		CreatedAt: uc.now().UTC(),
	}
	if err := uc.leads.Create(ctx, lead); err != nil {
		uc.metrics.ObserveLeadArchive(false)
		uc.log.WarnContext(ctx, "lead archive failed", "lead_id", lead.ID, "error", err)
		return
	}
	uc.metrics.ObserveLeadArchive(true)
}
