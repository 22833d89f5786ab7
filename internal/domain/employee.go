// Package domain provides the roster domain layer: the employee record and the
// pure view engine (filter, sort, paginate, department aggregate) built over it.
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Employee status values as used by the status facet.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Employee is one roster record as delivered by the record source.
type Employee struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber"`
	Department     string `json:"department"`
	Position       string `json:"position"`
	HireDate       string `json:"hireDate"`
	IsActive       bool   `json:"isActive"`
	Salary         string `json:"salary"`
	Gender         string `json:"gender"`
	MaritalStatus  string `json:"maritalStatus"`
	BloodType      string `json:"bloodType"`
	EducationLevel string `json:"educationLevel"`
	Nationality    string `json:"nationality"`
}

// FullName returns "first last", the key the name sort compares on.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Status returns StatusActive or StatusInactive.
func (e Employee) Status() string {
	if e.IsActive {
		return StatusActive
	}
	return StatusInactive
}

// SearchField exposes text fields to search providers by their wire name.
func (e Employee) SearchField(name string) string {
	switch name {
	case "id":
		return e.ID
	case "firstName":
		return e.FirstName
	case "lastName":
		return e.LastName
	case "email":
		return e.Email
	case "phoneNumber":
		return e.PhoneNumber
	case "department":
		return e.Department
	case "position":
		return e.Position
	case "nationality":
		return e.Nationality
	default:
		return ""
	}
}

// HireInstant parses HireDate. The second result is false when the date is missing or malformed.
func (e Employee) HireInstant() (time.Time, bool) {
	return parseInstant(e.HireDate)
}

// SalaryValue parses Salary as a decimal. The second result is false when it is empty or malformed.
func (e Employee) SalaryValue() (decimal.Decimal, bool) {
	return parseDecimal(e.Salary)
}

// ValidateCollection checks the roster-wide invariant that every record has a unique, non-empty ID.
func ValidateCollection(employees []Employee) error {
	seen := make(map[string]int, len(employees))
	for i := range employees {
		id := employees[i].ID
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("record %d: %w", i, ErrMissingID)
		}
		if prev, dup := seen[id]; dup {
			return fmt.Errorf("records %d and %d share id %q: %w", prev, i, id, ErrDuplicateID)
		}
		seen[id] = i
	}
	return nil
}

// dateLayouts are tried in order when parsing hire dates and date bounds.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// parseInstant parses s with the first matching layout. Zone-less values are UTC.
func parseInstant(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseCalendarDate parses s and drops the time of day.
func parseCalendarDate(s string) (time.Time, bool) {
	t, ok := parseInstant(s)
	if !ok {
		return time.Time{}, false
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
}

func parseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
