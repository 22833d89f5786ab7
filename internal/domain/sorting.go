package domain

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortField specifies which field to sort employees by.
type SortField string

const (
	SortByName       SortField = "name"
	SortByDepartment SortField = "department"
	SortByPosition   SortField = "position"
	SortByHireDate   SortField = "hireDate"
	SortBySalary     SortField = "salary"
)

// SortFields lists the sort keys in the order the UI cycles through them.
var SortFields = []SortField{SortByName, SortByDepartment, SortByPosition, SortByHireDate, SortBySalary}

// IsValid checks if the sort field is valid.
func (s SortField) IsValid() bool {
	switch s {
	case SortByName, SortByDepartment, SortByPosition, SortByHireDate, SortBySalary:
		return true
	default:
		return false
	}
}

// String returns the string representation of the sort field.
func (s SortField) String() string {
	return string(s)
}

// Next returns the sort field after s in SortFields, wrapping around.
func (s SortField) Next() SortField {
	for i, f := range SortFields {
		if f == s {
			return SortFields[(i+1)%len(SortFields)]
		}
	}
	return SortFields[0]
}

// SortOrder specifies the sort direction.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// IsValid checks if the sort order is valid.
func (s SortOrder) IsValid() bool {
	switch s {
	case SortOrderAsc, SortOrderDesc:
		return true
	default:
		return false
	}
}

// String returns the string representation of the sort order.
func (s SortOrder) String() string {
	return string(s)
}

// Toggle returns the opposite direction.
func (s SortOrder) Toggle() SortOrder {
	if s == SortOrderDesc {
		return SortOrderAsc
	}
	return SortOrderDesc
}

// SortOptions holds sorting options for employees.
type SortOptions struct {
	Field SortField `json:"field"`
	Order SortOrder `json:"order"`
}

// DefaultSortOptions returns the default sort options (name ascending).
func DefaultSortOptions() SortOptions {
	return SortOptions{Field: SortByName, Order: SortOrderAsc}
}

// normalizeSortOptions replaces invalid parts with the defaults.
func normalizeSortOptions(opts SortOptions) SortOptions {
	def := DefaultSortOptions()
	if !opts.Field.IsValid() {
		opts.Field = def.Field
	}
	if !opts.Order.IsValid() {
		opts.Order = def.Order
	}
	return opts
}

// ParseSortField parses a string into a SortField.
func ParseSortField(field string) (SortField, error) {
	f := SortField(field)
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidSortField, field)
	}
	return f, nil
}

// ParseSortOrder parses a string into a SortOrder.
func ParseSortOrder(order string) (SortOrder, error) {
	o := SortOrder(order)
	if !o.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidSortOrder, order)
	}
	return o, nil
}

// Comparator returns a negative number when a sorts before b, positive when after, 0 on ties.
type Comparator func(a, b *Employee) int

// ComparatorRegistry maps sort keys to comparators.
// Collators keep scratch buffers, so a registry must not be shared between goroutines.
type ComparatorRegistry struct {
	locale      language.Tag
	comparators map[SortField]Comparator
}

// NewComparatorRegistry builds the registry for the given collation locale.
func NewComparatorRegistry(locale language.Tag) *ComparatorRegistry {
	nameCollator := collate.New(locale, collate.IgnoreCase)
	textCollator := collate.New(locale)

	r := &ComparatorRegistry{
		locale:      locale,
		comparators: make(map[SortField]Comparator, len(SortFields)),
	}
	r.Register(SortByName, func(a, b *Employee) int {
		return nameCollator.CompareString(a.FullName(), b.FullName())
	})
	r.Register(SortByDepartment, func(a, b *Employee) int {
		return textCollator.CompareString(a.Department, b.Department)
	})
	r.Register(SortByPosition, func(a, b *Employee) int {
		return textCollator.CompareString(a.Position, b.Position)
	})
	r.Register(SortByHireDate, compareHireDate)
	r.Register(SortBySalary, compareSalary)
	return r
}

// Register installs or replaces the comparator for field.
func (r *ComparatorRegistry) Register(field SortField, cmp Comparator) {
	r.comparators[field] = cmp
}

// Comparator returns the comparator for field.
func (r *ComparatorRegistry) Comparator(field SortField) (Comparator, bool) {
	cmp, ok := r.comparators[field]
	return cmp, ok
}

// Locale returns the collation locale.
func (r *ComparatorRegistry) Locale() language.Tag {
	return r.locale
}

// compareHireDate orders by instant; malformed dates sort as the zero time.
func compareHireDate(a, b *Employee) int {
	ta, _ := a.HireInstant()
	tb, _ := b.HireInstant()
	return ta.Compare(tb)
}

// compareSalary orders numerically; missing or malformed salaries count as 0.
func compareSalary(a, b *Employee) int {
	sa, ok := a.SalaryValue()
	if !ok {
		sa = decimal.Zero
	}
	sb, ok := b.SalaryValue()
	if !ok {
		sb = decimal.Zero
	}
	return sa.Cmp(sb)
}

// SortEmployees returns a stably sorted copy of employees.
// Descending order negates the comparator, so ties keep input order in both directions.
// A nil registry uses English collation.
func SortEmployees(employees []Employee, opts SortOptions, registry *ComparatorRegistry) []Employee {
	sorted := make([]Employee, len(employees))
	copy(sorted, employees)
	if len(sorted) < 2 {
		return sorted
	}

	opts = normalizeSortOptions(opts)
	if registry == nil {
		registry = NewComparatorRegistry(language.English)
	}
	cmp, ok := registry.Comparator(opts.Field)
	if !ok {
		return sorted
	}

	desc := opts.Order == SortOrderDesc
	sort.SliceStable(sorted, func(i, j int) bool {
		c := cmp(&sorted[i], &sorted[j])
		if desc {
			c = -c
		}
		return c < 0
	})
	return sorted
}
