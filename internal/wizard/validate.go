package wizard

import (
	"strings"
	"unicode/utf8"

	"portfolio-backend/pkg/validation"
)

var schema = validation.New()

// ValidateStep checks the fields mapped to step and returns the invalid ones
// with their messages. The review step has no fields and is always valid.
func ValidateStep(d Draft, step Step) map[Field]string {
	fields := step.Fields()
	if len(fields) == 0 {
		return nil
	}

	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, structFields[f])
	}

	err := schema.StructPartial(d, names...)
	if err == nil {
		return nil
	}

	out := make(map[Field]string)
	for field, msgs := range validation.FormatFieldErrors(err) {
		out[Field(field)] = strings.Join(msgs, ", ")
	}
	return out
}

// ValidateDraft checks every step and returns the first invalid step along
// with all invalid fields. ok is true when the whole draft is valid.
func ValidateDraft(d Draft) (first Step, errs map[Field]string, ok bool) {
	first = StepReview
	for step := StepIdentity; step < StepReview; step++ {
		stepErrs := ValidateStep(d, step)
		if len(stepErrs) == 0 {
			continue
		}
		if errs == nil {
			errs = make(map[Field]string)
			first = step
		}
		for f, msg := range stepErrs {
			errs[f] = msg
		}
	}

	// Goals and notes are within their own limits but the composed message
	// still has to fit the gateway's message ceiling.
	if _, flagged := errs[FieldGoals]; !flagged && !BriefFits(d) {
		if errs == nil {
			errs = make(map[Field]string)
		}
		errs[FieldGoals] = validation.Messages["goals.brief"]
		first = min(first, StepScope)
	}
	return first, errs, errs == nil
}

// BriefFits reports whether the composed message stays within the gateway's
// message length, counted in characters as the gateway counts them.
func BriefFits(d Draft) bool {
	return utf8.RuneCountInString(ComposeMessage(d)) <= validation.MaxMessageLength
}
