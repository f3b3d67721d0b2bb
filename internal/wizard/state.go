package wizard

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	ErrUnknownField = errors.New("wizard: unknown field")
	ErrInvalidValue = errors.New("wizard: invalid value type")
)

// State is the whole wizard. Transitions are methods with value receivers
// that return the next State; the receiver is never mutated.
type State struct {
	Draft      Draft
	Step       Step
	Submitting bool
	// Errors holds the current validation message per invalid field.
	Errors map[Field]string

	// passed records which input steps validated at least once this session.
	passed [StepReview]bool
}

// New returns the initial state: empty draft on the first step.
func New() State {
	return State{Draft: NewDraft(), Step: StepIdentity}
}

// Passed reports whether step has passed validation during this session.
func (s State) Passed(step Step) bool {
	if step < StepIdentity || step >= StepReview {
		return false
	}
	return s.passed[step]
}

// Error returns the validation message for field, if any.
func (s State) Error(field Field) string {
	return s.Errors[field]
}

// Advance validates the current step. On failure the step's invalid fields
// get messages and the step is unchanged; on success the step's messages are
// cleared and the wizard moves forward. Advancing from the review step is a
// no-op: submission goes through Submit.
func (s State) Advance() State {
	if s.Step >= StepReview {
		return s
	}

	next := s.clone()
	for _, f := range s.Step.Fields() {
		delete(next.Errors, f)
	}

	errs := ValidateStep(s.Draft, s.Step)
	if len(errs) > 0 {
		maps.Copy(next.Errors, errs)
		return next
	}

	next.passed[s.Step] = true
	next.Step++
	return next
}

// Retreat moves back one step without validating.
func (s State) Retreat() State {
	if s.Step <= StepIdentity {
		return s
	}
	next := s.clone()
	next.Step--
	return next
}

// JumpToStep sets the step directly, clamped to the valid range, without
// validating anything. It backs the review screen's edit links. Skipping
// ahead does not mark steps as passed, so Submit still refuses.
func (s State) JumpToStep(n Step) State {
	next := s.clone()
	next.Step = n.clamp()
	return next
}

// UpdateField sets one draft attribute. Text fields take a string, the scope
// field a []Scope or []string, the budget a Budget or string. Nothing is
// validated here.
func (s State) UpdateField(field Field, value any) (State, error) {
	next := s.clone()
	d := &next.Draft

	switch field {
	case FieldName, FieldEmail, FieldGoals, FieldStartDate, FieldTimelineNotes:
		str, ok := value.(string)
		if !ok {
			return s, fmt.Errorf("%w: %s wants string, got %T", ErrInvalidValue, field, value)
		}
		switch field {
		case FieldName:
			d.Name = str
		case FieldEmail:
			d.Email = str
		case FieldGoals:
			d.Goals = str
		case FieldStartDate:
			d.StartDate = str
		case FieldTimelineNotes:
			d.TimelineNotes = str
		}
	case FieldProjectScope:
		switch v := value.(type) {
		case []Scope:
			d.ProjectScope = dedupeScopes(v)
		case []string:
			scopes := make([]Scope, 0, len(v))
			for _, raw := range v {
				scopes = append(scopes, Scope(raw))
			}
			d.ProjectScope = dedupeScopes(scopes)
		default:
			return s, fmt.Errorf("%w: %s wants []Scope, got %T", ErrInvalidValue, field, value)
		}
	case FieldBudgetRange:
		switch v := value.(type) {
		case Budget:
			d.BudgetRange = v
		case string:
			d.BudgetRange = Budget(v)
		default:
			return s, fmt.Errorf("%w: %s wants Budget, got %T", ErrInvalidValue, field, value)
		}
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return next, nil
}

// ToggleScope checks or unchecks a single scope tag.
func (s State) ToggleScope(scope Scope) State {
	next := s.clone()
	if next.Draft.HasScope(scope) {
		next.Draft.ProjectScope = slices.DeleteFunc(next.Draft.ProjectScope, func(v Scope) bool { return v == scope })
	} else {
		next.Draft.ProjectScope = append(next.Draft.ProjectScope, scope)
	}
	return next
}

func (s State) clone() State {
	s.Draft = s.Draft.clone()
	s.Errors = maps.Clone(s.Errors)
	if s.Errors == nil {
		s.Errors = make(map[Field]string)
	}
	return s
}

func dedupeScopes(in []Scope) []Scope {
	out := make([]Scope, 0, len(in))
	for _, v := range in {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
