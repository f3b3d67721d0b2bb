package wizard

import (
	"context"
	"errors"
	"strings"
)

// Texts shown to the visitor after a submission attempt.
const (
	SuccessText      = "Brief sent!"
	GenericErrorText = "Failed to send message. Please try again."
)

// SubmittedEvent is emitted to the Tracker after a successful submission.
const SubmittedEvent = "Contact: Brief Submitted"

// Gateway delivers a payload to the contact endpoint.
type Gateway interface {
	Submit(ctx context.Context, p Payload) error
}

// FieldErrorer is implemented by gateway errors that carry per-field
// messages keyed by payload field.
type FieldErrorer interface {
	FieldErrors() map[string][]string
}

// UserMessager is implemented by gateway errors whose text is safe to show.
type UserMessager interface {
	UserMessage() string
}

// NotificationKind distinguishes success toasts from error toasts.
type NotificationKind int

const (
	NotifySuccess NotificationKind = iota
	NotifyError
)

// Notification is a transient message for the visitor.
type Notification struct {
	Kind NotificationKind
	Text string
}

// Notifier surfaces notifications to the visitor.
type Notifier interface {
	Notify(n Notification)
}

// Tracker receives analytics events.
type Tracker interface {
	Track(event string, props map[string]string)
}

// Deps are the collaborators Submit talks to. Notifier and Tracker may be nil.
type Deps struct {
	Gateway  Gateway
	Notifier Notifier
	Tracker  Tracker
}

// Outcome summarises what Submit did.
type Outcome int

const (
	// OutcomeIgnored: not on the review step, nothing happened.
	OutcomeIgnored Outcome = iota
	// OutcomeInvalid: the draft failed local validation; no network call.
	OutcomeInvalid
	// OutcomeSent: the gateway accepted the brief and the draft was reset.
	OutcomeSent
	// OutcomeRejected: the gateway returned field errors.
	OutcomeRejected
	// OutcomeFailed: transport, throttling or server failure; draft kept.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeSent:
		return "sent"
	case OutcomeRejected:
		return "rejected"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// payloadFields maps gateway field names back onto draft fields. The
// composed message is attributed to the goals field the visitor typed.
var payloadFields = map[string]Field{
	"name":    FieldName,
	"email":   FieldEmail,
	"message": FieldGoals,
}

// Submit sends the draft from the review step. Submitting is true for the
// duration of the call and false in the returned state on every path.
func Submit(ctx context.Context, s State, deps Deps) (next State, outcome Outcome) {
	if s.Step != StepReview || s.Submitting {
		return s, OutcomeIgnored
	}

	next = s.clone()
	next.Submitting = true
	defer func() { next.Submitting = false }()

	for step := StepIdentity; step < StepReview; step++ {
		if !next.passed[step] {
			next.Step = step
			return next, OutcomeInvalid
		}
	}

	if first, errs, ok := ValidateDraft(next.Draft); !ok {
		next.Errors = errs
		next.Step = first
		return next, OutcomeInvalid
	}

	err := deps.Gateway.Submit(ctx, BuildPayload(next.Draft))
	if err == nil {
		notify(deps.Notifier, NotifySuccess, SuccessText)
		if deps.Tracker != nil {
			deps.Tracker.Track(SubmittedEvent, map[string]string{
				"budget":   string(next.Draft.BudgetRange),
				"timeline": next.Draft.StartDate,
			})
		}
		return New(), OutcomeSent
	}

	var fe FieldErrorer
	if errors.As(err, &fe) && len(fe.FieldErrors()) > 0 {
		if errs, ok := mapFieldErrors(fe.FieldErrors()); ok {
			// Back to the start so the visitor walks past every flagged field.
			next.Errors = errs
			next.Step = StepIdentity
			return next, OutcomeRejected
		}
	}

	text := GenericErrorText
	var um UserMessager
	if errors.As(err, &um) && strings.TrimSpace(um.UserMessage()) != "" {
		text = um.UserMessage()
	}
	notify(deps.Notifier, NotifyError, text)
	return next, OutcomeFailed
}

// mapFieldErrors attributes gateway errors to draft fields. ok is false when
// nothing maps.
func mapFieldErrors(in map[string][]string) (map[Field]string, bool) {
	errs := make(map[Field]string)
	for name, msgs := range in {
		field, known := payloadFields[name]
		if !known || len(msgs) == 0 {
			continue
		}
		errs[field] = strings.Join(msgs, ", ")
	}
	return errs, len(errs) > 0
}

func notify(n Notifier, kind NotificationKind, text string) {
	if n == nil {
		return
	}
	n.Notify(Notification{Kind: kind, Text: text})
}
