package domain

import (
	"fmt"

	"github.com/cristianoliveira/staffview/internal/search"
)

// FilterField names one independently settable filter of the view.
type FilterField string

const (
	FilterSearch         FilterField = "search"
	FilterDepartment     FilterField = "department"
	FilterStatus         FilterField = "status"
	FilterGender         FilterField = "gender"
	FilterEducationLevel FilterField = "educationLevel"
	FilterBloodType      FilterField = "bloodType"
	FilterMaritalStatus  FilterField = "maritalStatus"
	FilterHireDateFrom   FilterField = "hireDateFrom"
	FilterHireDateTo     FilterField = "hireDateTo"
	FilterMinSalary      FilterField = "minSalary"
	FilterMaxSalary      FilterField = "maxSalary"
)

// FilterFields lists every filter in predicate evaluation order.
var FilterFields = []FilterField{
	FilterSearch,
	FilterDepartment,
	FilterStatus,
	FilterGender,
	FilterEducationLevel,
	FilterBloodType,
	FilterMaritalStatus,
	FilterHireDateFrom,
	FilterHireDateTo,
	FilterMinSalary,
	FilterMaxSalary,
}

// IsValid checks if the filter field is known.
func (f FilterField) IsValid() bool {
	for _, known := range FilterFields {
		if f == known {
			return true
		}
	}
	return false
}

// String returns the string representation of the filter field.
func (f FilterField) String() string {
	return string(f)
}

// ParseFilterField parses a string into a FilterField.
func ParseFilterField(field string) (FilterField, error) {
	f := FilterField(field)
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownFilter, field)
	}
	return f, nil
}

// Filter holds the filter half of a view specification.
// An empty string leaves the corresponding rule inactive.
type Filter struct {
	Search         string `json:"search,omitempty"`
	Department     string `json:"department,omitempty"`
	Status         string `json:"status,omitempty"` // "active", "inactive", or ""
	Gender         string `json:"gender,omitempty"`
	EducationLevel string `json:"educationLevel,omitempty"`
	BloodType      string `json:"bloodType,omitempty"`
	MaritalStatus  string `json:"maritalStatus,omitempty"`
	HireDateFrom   string `json:"hireDateFrom,omitempty"` // inclusive
	HireDateTo     string `json:"hireDateTo,omitempty"`   // inclusive
	MinSalary      string `json:"minSalary,omitempty"`    // inclusive
	MaxSalary      string `json:"maxSalary,omitempty"`    // inclusive
}

// IsEmpty returns true if the filter has no criteria set.
func (f Filter) IsEmpty() bool {
	return f == Filter{}
}

// Get returns the value of a filter field; unknown fields read as "".
func (f Filter) Get(field FilterField) string {
	if p := f.slot(field); p != nil {
		return *p
	}
	return ""
}

// With returns a copy of f with field set to value.
func (f Filter) With(field FilterField, value string) (Filter, error) {
	p := f.slot(field)
	if p == nil {
		return f, fmt.Errorf("%w: %s", ErrUnknownFilter, field)
	}
	*p = value
	return f, nil
}

// slot points into the receiver copy, so callers always work on their own value.
func (f *Filter) slot(field FilterField) *string {
	switch field {
	case FilterSearch:
		return &f.Search
	case FilterDepartment:
		return &f.Department
	case FilterStatus:
		return &f.Status
	case FilterGender:
		return &f.Gender
	case FilterEducationLevel:
		return &f.EducationLevel
	case FilterBloodType:
		return &f.BloodType
	case FilterMaritalStatus:
		return &f.MaritalStatus
	case FilterHireDateFrom:
		return &f.HireDateFrom
	case FilterHireDateTo:
		return &f.HireDateTo
	case FilterMinSalary:
		return &f.MinSalary
	case FilterMaxSalary:
		return &f.MaxSalary
	default:
		return nil
	}
}

// ValidateFilterValue reports whether value can be stored in field.
// Empty values are always accepted since they clear the rule.
func ValidateFilterValue(field FilterField, value string) error {
	if !field.IsValid() {
		return fmt.Errorf("%w: %s", ErrUnknownFilter, field)
	}
	if value == "" {
		return nil
	}
	switch field {
	case FilterStatus:
		if value != StatusActive && value != StatusInactive {
			return fmt.Errorf("%w: status must be %s or %s, got %q", ErrInvalidFilterValue, StatusActive, StatusInactive, value)
		}
	case FilterHireDateFrom, FilterHireDateTo:
		if _, ok := parseCalendarDate(value); !ok {
			return fmt.Errorf("%w: %s is not a date: %q", ErrInvalidFilterValue, field, value)
		}
	case FilterMinSalary, FilterMaxSalary:
		if _, ok := parseDecimal(value); !ok {
			return fmt.Errorf("%w: %s is not a number: %q", ErrInvalidFilterValue, field, value)
		}
	}
	return nil
}

// Predicate is one named filter rule over a single field.
type Predicate struct {
	Name  FilterField
	Match func(e *Employee) bool
}

// PredicateSet is an ordered list of active predicates composed with AND.
type PredicateSet []Predicate

// Match reports whether e passes every predicate. An empty set matches everything.
func (ps PredicateSet) Match(e *Employee) bool {
	for _, p := range ps {
		if !p.Match(e) {
			return false
		}
	}
	return true
}

// Apply returns the employees that pass every predicate, in input order.
func (ps PredicateSet) Apply(employees []Employee) []Employee {
	if len(ps) == 0 {
		return employees
	}
	result := make([]Employee, 0, len(employees))
	for i := range employees {
		if ps.Match(&employees[i]) {
			result = append(result, employees[i])
		}
	}
	return result
}

// Names returns the names of the predicates in evaluation order.
func (ps PredicateSet) Names() []FilterField {
	names := make([]FilterField, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}
	return names
}

// BuildPredicates turns the active rules of f into a PredicateSet.
// A nil provider selects case-insensitive substring search.
func BuildPredicates(f Filter, provider search.Provider) PredicateSet {
	ps := make(PredicateSet, 0, len(FilterFields))
	if f.Search != "" {
		if provider == nil {
			provider = search.NewSubstringProvider()
		}
		ps = append(ps, SearchPredicate(f.Search, provider))
	}
	if f.Department != "" {
		ps = append(ps, ExactPredicate(FilterDepartment, f.Department, func(e *Employee) string { return e.Department }))
	}
	if f.Status != "" {
		ps = append(ps, StatusPredicate(f.Status))
	}
	if f.Gender != "" {
		ps = append(ps, ExactPredicate(FilterGender, f.Gender, func(e *Employee) string { return e.Gender }))
	}
	if f.EducationLevel != "" {
		ps = append(ps, ExactPredicate(FilterEducationLevel, f.EducationLevel, func(e *Employee) string { return e.EducationLevel }))
	}
	if f.BloodType != "" {
		ps = append(ps, ExactPredicate(FilterBloodType, f.BloodType, func(e *Employee) string { return e.BloodType }))
	}
	if f.MaritalStatus != "" {
		ps = append(ps, ExactPredicate(FilterMaritalStatus, f.MaritalStatus, func(e *Employee) string { return e.MaritalStatus }))
	}
	if f.HireDateFrom != "" {
		ps = append(ps, HiredOnOrAfter(f.HireDateFrom))
	}
	if f.HireDateTo != "" {
		ps = append(ps, HiredOnOrBefore(f.HireDateTo))
	}
	if f.MinSalary != "" {
		ps = append(ps, SalaryAtLeast(f.MinSalary))
	}
	if f.MaxSalary != "" {
		ps = append(ps, SalaryAtMost(f.MaxSalary))
	}
	return ps
}

// SearchPredicate matches records the provider accepts for term.
func SearchPredicate(term string, provider search.Provider) Predicate {
	return Predicate{
		Name: FilterSearch,
		Match: func(e *Employee) bool {
			return provider.Match(*e, term)
		},
	}
}

// ExactPredicate matches records whose field equals value exactly (case-sensitive).
func ExactPredicate(name FilterField, value string, field func(e *Employee) string) Predicate {
	return Predicate{
		Name: name,
		Match: func(e *Employee) bool {
			return field(e) == value
		},
	}
}

// StatusPredicate matches active or inactive records. Any other value matches nothing.
func StatusPredicate(status string) Predicate {
	return Predicate{
		Name: FilterStatus,
		Match: func(e *Employee) bool {
			switch status {
			case StatusActive:
				return e.IsActive
			case StatusInactive:
				return !e.IsActive
			default:
				return false
			}
		},
	}
}

// HiredOnOrAfter matches records hired on or after the bound date.
// Records with a malformed hire date, or a malformed bound, never match.
func HiredOnOrAfter(bound string) Predicate {
	from, boundOK := parseCalendarDate(bound)
	return Predicate{
		Name: FilterHireDateFrom,
		Match: func(e *Employee) bool {
			hired, ok := parseCalendarDate(e.HireDate)
			return boundOK && ok && !hired.Before(from)
		},
	}
}

// HiredOnOrBefore matches records hired on or before the bound date.
func HiredOnOrBefore(bound string) Predicate {
	to, boundOK := parseCalendarDate(bound)
	return Predicate{
		Name: FilterHireDateTo,
		Match: func(e *Employee) bool {
			hired, ok := parseCalendarDate(e.HireDate)
			return boundOK && ok && !hired.After(to)
		},
	}
}

// SalaryAtLeast matches records whose salary is >= bound.
// Records with an empty or malformed salary never match.
func SalaryAtLeast(bound string) Predicate {
	floor, boundOK := parseDecimal(bound)
	return Predicate{
		Name: FilterMinSalary,
		Match: func(e *Employee) bool {
			salary, ok := parseDecimal(e.Salary)
			return boundOK && ok && salary.GreaterThanOrEqual(floor)
		},
	}
}

// SalaryAtMost matches records whose salary is <= bound.
func SalaryAtMost(bound string) Predicate {
	ceiling, boundOK := parseDecimal(bound)
	return Predicate{
		Name: FilterMaxSalary,
		Match: func(e *Employee) bool {
			salary, ok := parseDecimal(e.Salary)
			return boundOK && ok && salary.LessThanOrEqual(ceiling)
		},
	}
}

// FilterEmployees returns the employees matching every active rule of filter.
func FilterEmployees(employees []Employee, filter Filter) []Employee {
	return BuildPredicates(filter, nil).Apply(employees)
}
