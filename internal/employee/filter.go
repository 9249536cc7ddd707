package employee

import (
	"strings"

	"github.com/frahmantamala/employee-records/internal"
)

// GenderFilter matches either every gender or exactly one. The zero value
// matches everything, so the wildcard is never mixed into the Gender domain.
type GenderFilter struct {
	gender Gender
}

func AnyGender() GenderFilter {
	return GenderFilter{}
}

func GenderIs(g Gender) GenderFilter {
	return GenderFilter{gender: g}
}

func (f GenderFilter) Matches(g Gender) bool {
	return f.gender == "" || f.gender == g
}

func ParseGenderFilter(s string) (GenderFilter, error) {
	switch s {
	case "", "all":
		return AnyGender(), nil
	case "male", "female", "other":
		return GenderIs(Gender(s)), nil
	}
	return GenderFilter{}, internal.NewValidationError("gender filter must be all, male, female or other", internal.ErrCodeInvalidFilter)
}

// StatusFilter matches on the active flag; the zero value matches both.
type StatusFilter int

const (
	AnyStatus StatusFilter = iota
	ActiveOnly
	InactiveOnly
)

func (f StatusFilter) Matches(active bool) bool {
	switch f {
	case ActiveOnly:
		return active
	case InactiveOnly:
		return !active
	}
	return true
}

func ParseStatusFilter(s string) (StatusFilter, error) {
	switch s {
	case "", "all":
		return AnyStatus, nil
	case "active":
		return ActiveOnly, nil
	case "inactive":
		return InactiveOnly, nil
	}
	return AnyStatus, internal.NewValidationError("status filter must be all, active or inactive", internal.ErrCodeInvalidFilter)
}

// Criteria is the caller-held filter state. The zero value matches every
// record.
type Criteria struct {
	SearchQuery string
	Gender      GenderFilter
	Status      StatusFilter
}

// Apply returns the records matching all three predicates, in their original
// order. The input is never mutated.
func Apply(records []Employee, c Criteria) []Employee {
	query := strings.ToLower(c.SearchQuery)

	out := make([]Employee, 0, len(records))
	for _, rec := range records {
		if !strings.Contains(strings.ToLower(rec.FullName), query) {
			continue
		}
		if !c.Gender.Matches(rec.Gender) {
			continue
		}
		if !c.Status.Matches(rec.IsActive) {
			continue
		}
		out = append(out, rec)
	}
	return out
}
