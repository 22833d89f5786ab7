// Package view owns the roster view specification and turns it into the
// page the presentation layer renders.
//
// The controller is the only writer of the ViewSpec. Every mutation builds a new
// spec value and replaces the old one wholesale; results are memoized on the
// record generation and the spec, so republishing an unchanged view costs nothing.
// A Controller is not safe for concurrent use; hosts drive it from one goroutine
// (the bubbletea update loop, a CLI command).
package view

import (
	"fmt"
	"maps"
	"time"

	"github.com/cristianoliveira/staffview/internal/domain"
	"github.com/cristianoliveira/staffview/internal/logging"
	"github.com/cristianoliveira/staffview/internal/search"
	"golang.org/x/text/language"
)

// Result is what the presentation layer renders.
type Result struct {
	Visible     []domain.Employee      `json:"visibleRecords"`
	Pagination  domain.Pagination      `json:"pagination"`
	Departments domain.DepartmentStats `json:"departmentStats"`
	Spec        domain.ViewSpec        `json:"spec"`
}

// Listener receives every newly published result.
type Listener func(Result)

type memoKey struct {
	generation uint64
	spec       domain.ViewSpec
}

// Controller holds the record snapshot and the current view specification.
type Controller struct {
	records    []domain.Employee
	generation uint64
	spec       domain.ViewSpec

	provider search.Provider
	registry *domain.ComparatorRegistry
	logger   logging.Logger

	listeners map[int]Listener
	nextID    int

	pageKey   memoKey
	pageValid bool
	page      domain.Page

	deptGeneration uint64
	deptValid      bool
	depts          domain.DepartmentStats

	recomputes int
}

// Option configures a Controller.
type Option func(*Controller)

// WithSpec sets the initial view specification. Invalid parts fall back to defaults.
func WithSpec(spec domain.ViewSpec) Option {
	return func(c *Controller) {
		c.spec = sanitize(spec)
	}
}

// WithSearchProvider sets the matcher used by the search box.
func WithSearchProvider(p search.Provider) Option {
	return func(c *Controller) {
		if p != nil {
			c.provider = p
		}
	}
}

// WithLocale sets the collation locale for text sort keys.
func WithLocale(tag language.Tag) Option {
	return func(c *Controller) {
		c.registry = domain.NewComparatorRegistry(tag)
	}
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a controller over records with the default view.
func New(records []domain.Employee, opts ...Option) *Controller {
	c := &Controller{
		records:   cloneRecords(records),
		spec:      domain.DefaultViewSpec(),
		provider:  search.NewSubstringProvider(),
		logger:    logging.GetGlobal(),
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.registry == nil {
		c.registry = domain.NewComparatorRegistry(language.English)
	}
	c.logger = c.logger.With("component", "view")
	return c
}

// Spec returns the current view specification.
func (c *Controller) Spec() domain.ViewSpec {
	return c.spec
}

// Records returns the current record snapshot.
func (c *Controller) Records() []domain.Employee {
	return c.records
}

// SetRecords replaces the record snapshot. The view specification is kept;
// a page that no longer exists is clamped when the result is computed.
func (c *Controller) SetRecords(records []domain.Employee) {
	c.records = cloneRecords(records)
	c.generation++
	c.logger.Debug("records replaced", "count", len(records), "generation", c.generation)
	c.publish()
}

// SetSearch sets the free-text search term and returns to the first page.
func (c *Controller) SetSearch(term string) {
	next := c.spec
	next.Filter.Search = term
	if next.Filter != c.spec.Filter {
		next.Page = 1
	}
	c.replace(next)
}

// SetFilter sets one filter field and returns to the first page.
// An empty value clears the rule. Setting the current value again is a no-op.
func (c *Controller) SetFilter(field domain.FilterField, value string) error {
	if err := domain.ValidateFilterValue(field, value); err != nil {
		c.logger.Warn("filter rejected", "field", string(field), "error", err)
		return fmt.Errorf("set filter: %w", err)
	}
	filter, err := c.spec.Filter.With(field, value)
	if err != nil {
		return fmt.Errorf("set filter: %w", err)
	}
	next := c.spec
	next.Filter = filter
	if next.Filter != c.spec.Filter {
		next.Page = 1
	}
	c.replace(next)
	return nil
}

// ClearFilters removes every filter rule, including the search term.
func (c *Controller) ClearFilters() {
	next := c.spec
	next.Filter = domain.Filter{}
	if next.Filter != c.spec.Filter {
		next.Page = 1
	}
	c.replace(next)
}

// SetSort changes the sort key and direction. The page index is kept.
func (c *Controller) SetSort(field domain.SortField, order domain.SortOrder) error {
	if !field.IsValid() {
		c.logger.Warn("sort rejected", "field", string(field))
		return fmt.Errorf("set sort: %w: %s", domain.ErrInvalidSortField, field)
	}
	if !order.IsValid() {
		c.logger.Warn("sort rejected", "order", string(order))
		return fmt.Errorf("set sort: %w: %s", domain.ErrInvalidSortOrder, order)
	}
	next := c.spec
	next.Sort = domain.SortOptions{Field: field, Order: order}
	c.replace(next)
	return nil
}

// SetPage requests page n. Values below 1 are stored as 1; values past the
// last page are clamped when the result is computed.
func (c *Controller) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	next := c.spec
	next.Page = n
	c.replace(next)
}

// SetPageSize changes the page size and returns to the first page.
func (c *Controller) SetPageSize(n int) error {
	if _, err := domain.ParsePageSize(n); err != nil {
		c.logger.Warn("page size rejected", "size", n)
		return fmt.Errorf("set page size: %w", err)
	}
	next := c.spec
	if next.PageSize != n {
		next.PageSize = n
		next.Page = 1
	}
	c.replace(next)
	return nil
}

// NextPage moves one page forward from the effective page, if possible.
func (c *Controller) NextPage() {
	p := c.Result().Pagination
	if p.HasNext() {
		c.SetPage(p.CurrentPage + 1)
	}
}

// PrevPage moves one page back from the effective page, if possible.
func (c *Controller) PrevPage() {
	p := c.Result().Pagination
	if p.HasPrev() {
		c.SetPage(p.CurrentPage - 1)
	}
}

// Replace swaps in a whole new specification after validating it.
// The page-reset policy applies: a changed filter or page size returns to page 1.
func (c *Controller) Replace(spec domain.ViewSpec) error {
	if err := Validate(spec); err != nil {
		return fmt.Errorf("replace view: %w", err)
	}
	if spec.Filter != c.spec.Filter || spec.PageSize != c.spec.PageSize {
		spec.Page = 1
	}
	if spec.Page < 1 {
		spec.Page = 1
	}
	c.replace(spec)
	return nil
}

// Subscribe registers l for every published result and returns a function that removes it.
func (c *Controller) Subscribe(l Listener) func() {
	id := c.nextID
	c.nextID++
	c.listeners[id] = l
	return func() {
		delete(c.listeners, id)
	}
}

// Result returns the current view, recomputing only when the records or the spec changed.
// The returned slice and map are copies; changing them does not touch the memo.
func (c *Controller) Result() Result {
	key := memoKey{generation: c.generation, spec: c.spec}
	if !c.pageValid || c.pageKey != key {
		start := time.Now()
		c.page = domain.ApplyView(c.records, c.spec, c.provider, c.registry)
		c.pageKey = key
		c.pageValid = true
		c.recomputes++
		c.logger.Debug("view recomputed",
			"filtered", c.page.TotalCount,
			"page", c.page.CurrentPage,
			"total_pages", c.page.TotalPages,
			"duration", time.Since(start).String(),
		)
	}
	return Result{
		Visible:     cloneRecords(c.page.Items),
		Pagination:  c.page.Pagination,
		Departments: c.Departments(),
		Spec:        c.spec,
	}
}

// Departments returns a copy of the per-department aggregate of the full record snapshot.
// It depends only on the records, never on the view specification.
func (c *Controller) Departments() domain.DepartmentStats {
	if !c.deptValid || c.deptGeneration != c.generation {
		c.depts = domain.AggregateDepartments(c.records)
		c.deptGeneration = c.generation
		c.deptValid = true
	}
	return maps.Clone(c.depts)
}

// FacetValues lists the distinct values of an exact-match facet over all records.
func (c *Controller) FacetValues(field domain.FilterField) ([]string, error) {
	return domain.FacetValues(c.records, field)
}

// SearchMode returns the name of the active search provider.
func (c *Controller) SearchMode() string {
	return c.provider.Name()
}

func (c *Controller) replace(next domain.ViewSpec) {
	if next == c.spec {
		return
	}
	c.spec = next
	c.publish()
}

func (c *Controller) publish() {
	if len(c.listeners) == 0 {
		return
	}
	result := c.Result()
	for _, l := range c.listeners {
		l(result)
	}
}

// Validate reports the first invalid part of spec.
func Validate(spec domain.ViewSpec) error {
	for _, field := range domain.FilterFields {
		if err := domain.ValidateFilterValue(field, spec.Filter.Get(field)); err != nil {
			return err
		}
	}
	if !spec.Sort.Field.IsValid() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidSortField, spec.Sort.Field)
	}
	if !spec.Sort.Order.IsValid() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidSortOrder, spec.Sort.Order)
	}
	if _, err := domain.ParsePageSize(spec.PageSize); err != nil {
		return err
	}
	return nil
}

// sanitize replaces invalid parts of spec with defaults instead of rejecting it.
func sanitize(spec domain.ViewSpec) domain.ViewSpec {
	def := domain.DefaultViewSpec()
	if !spec.Sort.Field.IsValid() {
		spec.Sort.Field = def.Sort.Field
	}
	if !spec.Sort.Order.IsValid() {
		spec.Sort.Order = def.Sort.Order
	}
	if !domain.IsValidPageSize(spec.PageSize) {
		spec.PageSize = def.PageSize
	}
	if spec.Page < 1 {
		spec.Page = 1
	}
	for _, field := range domain.FilterFields {
		if domain.ValidateFilterValue(field, spec.Filter.Get(field)) != nil {
			spec.Filter, _ = spec.Filter.With(field, "")
		}
	}
	return spec
}

func cloneRecords(records []domain.Employee) []domain.Employee {
	out := make([]domain.Employee, len(records))
	copy(out, records)
	return out
}
