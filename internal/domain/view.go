package domain

import (
	"github.com/cristianoliveira/staffview/internal/search"
)

// ViewSpec is the complete query controlling what the roster shows.
// It is a comparable value; two equal specs always produce the same view.
type ViewSpec struct {
	Filter   Filter      `json:"filter"`
	Sort     SortOptions `json:"sort"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
}

// DefaultViewSpec returns an unfiltered first page sorted by name.
func DefaultViewSpec() ViewSpec {
	return ViewSpec{
		Sort:     DefaultSortOptions(),
		Page:     1,
		PageSize: DefaultPageSize,
	}
}

// ApplyView runs filter, sort and paginate over records.
func ApplyView(records []Employee, spec ViewSpec, provider search.Provider, registry *ComparatorRegistry) Page {
	filtered := BuildPredicates(spec.Filter, provider).Apply(records)
	ordered := SortEmployees(filtered, spec.Sort, registry)
	return Paginate(ordered, spec.PageSize, spec.Page)
}
