package main

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/staffview/internal/config"
	"github.com/cristianoliveira/staffview/internal/domain"
	"github.com/cristianoliveira/staffview/internal/search"
	"github.com/cristianoliveira/staffview/internal/view"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// viewFlags are the view settings shared by the list and tui commands.
type viewFlags struct {
	search     string
	department string
	status     string
	gender     string
	education  string
	blood      string
	marital    string
	hiredFrom  string
	hiredTo    string
	minSalary  string
	maxSalary  string

	sort  string
	order string
	page  int
	size  int

	searchMode string
	locale     string
}

func registerViewFlags(cmd *cobra.Command, f *viewFlags) {
	flags := cmd.Flags()
	flags.StringVar(&f.search, "search", "", "Search name, email, department and position")
	flags.StringVar(&f.department, "department", "", "Only employees of this department")
	flags.StringVar(&f.status, "status", "", "Employment status: active, inactive, all")
	flags.StringVar(&f.gender, "gender", "", "Filter by gender")
	flags.StringVar(&f.education, "education", "", "Filter by education level")
	flags.StringVar(&f.blood, "blood-type", "", "Filter by blood type")
	flags.StringVar(&f.marital, "marital-status", "", "Filter by marital status")
	flags.StringVar(&f.hiredFrom, "hired-from", "", "Hired on or after this date (YYYY-MM-DD)")
	flags.StringVar(&f.hiredTo, "hired-to", "", "Hired on or before this date (YYYY-MM-DD)")
	flags.StringVar(&f.minSalary, "min-salary", "", "Minimum salary, inclusive")
	flags.StringVar(&f.maxSalary, "max-salary", "", "Maximum salary, inclusive")

	flags.StringVar(&f.sort, "sort", "", "Sort field: name, department, position, hireDate, salary (default: sort_field)")
	flags.StringVar(&f.order, "order", "", "Sort order: asc, desc (default: sort_order)")
	flags.IntVar(&f.page, "page", 1, "Page to show, starting at 1")
	flags.IntVar(&f.size, "size", 0, "Page size: 5, 10, 20, 50 (default: page_size)")

	flags.StringVar(&f.searchMode, "search-mode", "", "Search matcher: substring, token, regex (default: search_mode)")
	flags.StringVar(&f.locale, "locale", "", "Collation locale for text sorting, e.g. sv-SE (default: collation_locale)")
}

// spec builds the view specification from configuration defaults and flags.
func (f *viewFlags) spec() (domain.ViewSpec, error) {
	spec := domain.DefaultViewSpec()
	spec.PageSize = config.GetInt("page_size", domain.DefaultPageSize)
	spec.Sort.Field = domain.SortField(config.Get("sort_field", string(domain.SortByName)))
	spec.Sort.Order = domain.SortOrder(config.Get("sort_order", string(domain.SortOrderAsc)))

	if f.sort != "" {
		spec.Sort.Field = domain.SortField(f.sort)
	}
	if f.order != "" {
		spec.Sort.Order = domain.SortOrder(strings.ToLower(f.order))
	}
	if f.size != 0 {
		spec.PageSize = f.size
	}
	spec.Page = f.page

	status := strings.ToLower(f.status)
	if status == "all" {
		status = ""
	}
	values := []struct {
		field domain.FilterField
		value string
	}{
		{domain.FilterSearch, f.search},
		{domain.FilterDepartment, f.department},
		{domain.FilterStatus, status},
		{domain.FilterGender, f.gender},
		{domain.FilterEducationLevel, f.education},
		{domain.FilterBloodType, f.blood},
		{domain.FilterMaritalStatus, f.marital},
		{domain.FilterHireDateFrom, f.hiredFrom},
		{domain.FilterHireDateTo, f.hiredTo},
		{domain.FilterMinSalary, f.minSalary},
		{domain.FilterMaxSalary, f.maxSalary},
	}
	for _, v := range values {
		if v.value == "" {
			continue
		}
		filter, err := spec.Filter.With(v.field, v.value)
		if err != nil {
			return domain.ViewSpec{}, err
		}
		spec.Filter = filter
	}

	if spec.Page < 1 {
		return domain.ViewSpec{}, fmt.Errorf("page must be at least 1, got %d", spec.Page)
	}
	if err := view.Validate(spec); err != nil {
		return domain.ViewSpec{}, err
	}
	return spec, nil
}

// options returns the controller options for the flags: spec, search mode and locale.
func (f *viewFlags) options() ([]view.Option, error) {
	spec, err := f.spec()
	if err != nil {
		return nil, err
	}

	mode := f.searchMode
	if mode == "" {
		mode = config.Get("search_mode", search.ModeSubstring)
	}
	provider, err := search.New(mode)
	if err != nil {
		return nil, err
	}

	locale := f.locale
	if locale == "" {
		locale = config.Get("collation_locale", "en")
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	return []view.Option{
		view.WithSpec(spec),
		view.WithSearchProvider(provider),
		view.WithLocale(tag),
	}, nil
}
