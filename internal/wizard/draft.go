package wizard

import (
	"slices"
)

// Field names a Draft attribute. Values match the JSON names used in
// validation messages.
type Field string

const (
	FieldName          Field = "name"
	FieldEmail         Field = "email"
	FieldProjectScope  Field = "projectScope"
	FieldGoals         Field = "goals"
	FieldBudgetRange   Field = "budgetRange"
	FieldStartDate     Field = "startDate"
	FieldTimelineNotes Field = "timelineNotes"
)

// structFields maps a Field to its Go struct field for partial validation.
var structFields = map[Field]string{
	FieldName:          "Name",
	FieldEmail:         "Email",
	FieldProjectScope:  "ProjectScope",
	FieldGoals:         "Goals",
	FieldBudgetRange:   "BudgetRange",
	FieldStartDate:     "StartDate",
	FieldTimelineNotes: "TimelineNotes",
}

// Draft is the in-progress answer set. It never leaves the session; only the
// composed Payload is sent.
type Draft struct {
	Name          string  `json:"name" validate:"min=2"`
	Email         string  `json:"email" validate:"email"`
	ProjectScope  []Scope `json:"projectScope" validate:"min=1,dive,oneof=portfolio-site marketing-site app-features"`
	Goals         string  `json:"goals" validate:"min=10,max=2000"`
	BudgetRange   Budget  `json:"budgetRange" validate:"oneof=under-5k 5k-10k 10k-25k 25k-plus"`
	StartDate     string  `json:"startDate" validate:"required,calendar_date"`
	TimelineNotes string  `json:"timelineNotes" validate:"max=500"`
}

// NewDraft returns an empty draft. No budget is preselected: the visitor has
// to choose one, the same way at least one scope must be chosen.
func NewDraft() Draft {
	return Draft{ProjectScope: []Scope{}}
}

// HasScope reports whether scope is selected.
func (d Draft) HasScope(scope Scope) bool {
	return slices.Contains(d.ProjectScope, scope)
}

func (d Draft) clone() Draft {
	d.ProjectScope = slices.Clone(d.ProjectScope)
	if d.ProjectScope == nil {
		d.ProjectScope = []Scope{}
	}
	return d
}
