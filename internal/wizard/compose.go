package wizard

import (
	"strings"

	"portfolio-backend/pkg/validation"
)

const (
	messageHeader   = "New project brief submitted via contact wizard:"
	notProvided     = "Not provided"
	notSpecified    = "Not specified"
	startDateLayout = "January 02, 2006"
)

// Payload is the flattened shape accepted by the contact gateway.
type Payload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// BuildPayload flattens a draft into the gateway's name/email/message shape.
func BuildPayload(d Draft) Payload {
	return Payload{
		Name:    d.Name,
		Email:   d.Email,
		Message: ComposeMessage(d),
	}
}

// ComposeMessage renders the structured answers as the human-readable
// message body. Output is deterministic for a given draft.
func ComposeMessage(d Draft) string {
	lines := []string{
		messageHeader,
		"",
		"Project scope: " + ScopeList(d.ProjectScope),
		"Goals: " + d.Goals,
		"Budget range: " + d.BudgetRange.Label(),
		"Desired start date: " + FormatStartDate(d.StartDate),
		"Timing notes: " + TimelineNotesOrPlaceholder(d.TimelineNotes),
	}
	return strings.Join(lines, "\n")
}

// ScopeList joins the labels of the selected scopes in declaration order.
func ScopeList(selected []Scope) string {
	labels := make([]string, 0, len(selected))
	for _, scope := range Scopes {
		for _, s := range selected {
			if s == scope {
				labels = append(labels, scope.Label())
				break
			}
		}
	}
	return strings.Join(labels, ", ")
}

// FormatStartDate renders a calendar date as "June 01, 2025". Unparseable
// input is returned unchanged.
func FormatStartDate(value string) string {
	if strings.TrimSpace(value) == "" {
		return notSpecified
	}
	t, err := validation.ParseDate(value)
	if err != nil {
		return value
	}
	return t.Format(startDateLayout)
}

// TimelineNotesOrPlaceholder substitutes the placeholder for empty notes.
func TimelineNotesOrPlaceholder(notes string) string {
	if notes == "" {
		return notProvided
	}
	return notes
}
