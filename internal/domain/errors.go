package domain

import (
	"errors"
)

var (
	// ErrMissingID is returned when a record has no ID.
	ErrMissingID = errors.New("employee id is empty")

	// ErrDuplicateID is returned when two records share an ID.
	ErrDuplicateID = errors.New("duplicate employee id")

	// ErrUnknownFilter is returned for a filter field the view does not know.
	ErrUnknownFilter = errors.New("unknown filter field")

	// ErrInvalidFilterValue is returned when a filter value cannot be used for its field.
	ErrInvalidFilterValue = errors.New("invalid filter value")

	// ErrInvalidSortField is returned for a sort key outside the registry.
	ErrInvalidSortField = errors.New("invalid sort field")

	// ErrInvalidSortOrder is returned for a direction other than asc/desc.
	ErrInvalidSortOrder = errors.New("invalid sort order")

	// ErrInvalidPageSize is returned for a page size outside PageSizes.
	ErrInvalidPageSize = errors.New("invalid page size")
)
