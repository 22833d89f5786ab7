package domain

import (
	"fmt"
)

// DefaultPageSize is used when no valid page size is configured.
const DefaultPageSize = 10

// PageSizes are the page sizes the view offers.
var PageSizes = []int{5, 10, 20, 50}

// IsValidPageSize reports whether n is one of PageSizes.
func IsValidPageSize(n int) bool {
	for _, size := range PageSizes {
		if n == size {
			return true
		}
	}
	return false
}

// ParsePageSize validates n against PageSizes.
func ParsePageSize(n int) (int, error) {
	if !IsValidPageSize(n) {
		return 0, fmt.Errorf("%w: %d (must be one of %v)", ErrInvalidPageSize, n, PageSizes)
	}
	return n, nil
}

// NextPageSize returns the page size after n in PageSizes, wrapping around.
func NextPageSize(n int) int {
	for i, size := range PageSizes {
		if size == n {
			return PageSizes[(i+1)%len(PageSizes)]
		}
	}
	return DefaultPageSize
}

// Pagination describes the window a page occupies in the ordered result.
// FirstIndex is the 0-based offset of the first item; LastIndex is exclusive.
type Pagination struct {
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	FirstIndex  int `json:"firstIndex"`
	LastIndex   int `json:"lastIndex"`
	TotalCount  int `json:"totalCount"`
	PageSize    int `json:"pageSize"`
}

// DisplayFrom returns the 1-based position of the first item, or 0 for an empty result.
func (p Pagination) DisplayFrom() int {
	if p.TotalCount == 0 {
		return 0
	}
	return p.FirstIndex + 1
}

// DisplayTo returns the 1-based position of the last item.
func (p Pagination) DisplayTo() int {
	return p.LastIndex
}

// HasPrev reports whether a previous page exists.
func (p Pagination) HasPrev() bool {
	return p.CurrentPage > 1
}

// HasNext reports whether a next page exists.
func (p Pagination) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}

// Page is one window of an ordered result.
type Page struct {
	Items []Employee
	Pagination
}

// Paginate slices ordered into the requested page.
// Out-of-range page numbers are clamped to [1, TotalPages]; an empty input yields one empty page.
// A page size below 1 falls back to DefaultPageSize.
func Paginate(ordered []Employee, pageSize, currentPage int) Page {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	count := len(ordered)
	totalPages := (count + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := currentPage
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	first := (page - 1) * pageSize
	last := first + pageSize
	if last > count {
		last = count
	}

	items := make([]Employee, last-first)
	copy(items, ordered[first:last])

	return Page{
		Items: items,
		Pagination: Pagination{
			TotalPages:  totalPages,
			CurrentPage: page,
			FirstIndex:  first,
			LastIndex:   last,
			TotalCount:  count,
			PageSize:    pageSize,
		},
	}
}
