package domain

import (
	"fmt"
	"sort"
)

// facetGetters are the exact-match facets whose values can be listed.
var facetGetters = map[FilterField]func(e *Employee) string{
	FilterDepartment:     func(e *Employee) string { return e.Department },
	FilterStatus:         func(e *Employee) string { return e.Status() },
	FilterGender:         func(e *Employee) string { return e.Gender },
	FilterEducationLevel: func(e *Employee) string { return e.EducationLevel },
	FilterBloodType:      func(e *Employee) string { return e.BloodType },
	FilterMaritalStatus:  func(e *Employee) string { return e.MaritalStatus },
}

// FacetValues returns the sorted distinct non-empty values of field over employees.
// Only exact-match facets can be listed.
func FacetValues(employees []Employee, field FilterField) ([]string, error) {
	get, ok := facetGetters[field]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no discrete values", ErrUnknownFilter, field)
	}

	seen := make(map[string]struct{})
	values := make([]string, 0)
	for i := range employees {
		v := get(&employees[i])
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values, nil
}
