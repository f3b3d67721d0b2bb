package content

import (
	"slices"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/validation"
)

// EffectiveDate is the end date when present, otherwise the start date.
// Missing or unparseable dates sort as the earliest possible time.
func EffectiveDate(p domain.Project) time.Time {
	if p.Dates == nil {
		return time.Time{}
	}
	raw := p.Dates.End
	if raw == "" {
		raw = p.Dates.Start
	}
	if raw == "" {
		return time.Time{}
	}
	t, err := validation.ParseDate(raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

// SortProjects returns a new slice ordered by effective date, newest first.
// Projects with equal dates keep their input order. The input is untouched.
func SortProjects(projects []domain.Project) []domain.Project {
	sorted := slices.Clone(projects)
	slices.SortStableFunc(sorted, func(a, b domain.Project) int {
		return EffectiveDate(b).Compare(EffectiveDate(a))
	})
	return sorted
}
