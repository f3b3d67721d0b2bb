package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormField collects errors that cannot be attributed to a single field.
const FormField = "_form"

// MaxMessageLength is the contact message ceiling in characters.
const MaxMessageLength = 2000

// Messages maps "<field>.<tag>" to the text shown to the visitor. The same
// table serves the contact endpoint and the brief wizard so both sides agree.
var Messages = map[string]string{
	"name.min":                "Name must be at least 2 characters",
	"email.email":             "Please enter a valid email address",
	"message.min":             "Message must be at least 10 characters",
	"message.max":             "Message must be less than 2000 characters",
	"projectScope.min":        "Select at least one project scope",
	"projectScope.oneof":      "Select a valid project scope",
	"goals.min":               "Please describe your goals in a bit more detail (10+ characters)",
	"goals.max":               "Goals must be less than 2000 characters",
	"goals.brief":             "Brief must be less than 2000 characters in total. Shorten your goals or timing notes",
	"budgetRange.oneof":       "Select a budget range",
	"startDate.required":      "Select a desired start date",
	"startDate.calendar_date": "Select a valid start date",
	"timelineNotes.max":       "Please keep timing notes under 500 characters",
}

// FieldLabels maps JSON field names to user-friendly labels
var FieldLabels = map[string]string{
	"name":          "Name",
	"email":         "Email",
	"message":       "Message",
	"projectScope":  "Project scope",
	"goals":         "Project goals",
	"budgetRange":   "Budget range",
	"startDate":     "Desired start date",
	"timelineNotes": "Timing notes",
}

// FormatFieldErrors converts a validator error into field -> messages.
// Errors that are not validation errors land under FormField.
func FormatFieldErrors(err error) map[string][]string {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string][]string{FormField: {err.Error()}}
	}

	out := make(map[string][]string, len(validationErrors))
	for _, e := range validationErrors {
		field := baseField(e.Field())
		out[field] = append(out[field], formatSingleError(field, e))
	}
	return out
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(field string, e validator.FieldError) string {
	if msg, ok := Messages[field+"."+e.Tag()]; ok {
		return msg
	}

	label := getFieldLabel(field)
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, param)
	case "max":
		return fmt.Sprintf("%s must be less than %s characters", label, param)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(param, " ", ", "))
	default:
		return fmt.Sprintf("%s: validation failed (%s)", label, e.Tag())
	}
}

// baseField strips the element index that dive rules append ("projectScope[0]").
func baseField(field string) string {
	if idx := strings.IndexByte(field, '['); idx != -1 {
		return field[:idx]
	}
	return field
}

func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
