package wizard

import "fmt"

// Step is an ordinal position in the wizard. Its field grouping is fixed.
type Step int

const (
	StepIdentity  Step = iota // name, email
	StepScope                 // project scope, goals
	StepLogistics             // budget, start date, timeline notes
	StepReview                // read-only summary
)

// TotalSteps is the count shown in the step indicator. The review step
// shares the last number.
const TotalSteps = 3

var stepFieldMap = map[Step][]Field{
	StepIdentity:  {FieldName, FieldEmail},
	StepScope:     {FieldProjectScope, FieldGoals},
	StepLogistics: {FieldBudgetRange, FieldStartDate, FieldTimelineNotes},
}

var stepTitles = [...]string{"About you", "Project scope", "Budget & timeline", "Review & submit"}

var stepDescriptions = [...]string{
	"Let me know how to reach you.",
	"Select what you need and share your goals.",
	"Clarify budget and schedule expectations.",
	"Double-check everything before sending.",
}

// Fields returns the fields validated when leaving this step.
func (s Step) Fields() []Field {
	return stepFieldMap[s]
}

func (s Step) Title() string {
	return stepTitles[s.clamp()]
}

func (s Step) Description() string {
	return stepDescriptions[s.clamp()]
}

// Indicator renders the visitor-facing progress text, e.g. "Step 2 of 3".
func (s Step) Indicator() string {
	display := s.clamp()
	if display > StepLogistics {
		display = StepLogistics
	}
	return fmt.Sprintf("Step %d of %d", int(display)+1, TotalSteps)
}

func (s Step) clamp() Step {
	switch {
	case s < StepIdentity:
		return StepIdentity
	case s > StepReview:
		return StepReview
	default:
		return s
	}
}
