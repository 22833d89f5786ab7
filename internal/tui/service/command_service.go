// Package service holds the non-visual logic of the roster TUI.
package service

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cristianoliveira/staffview/internal/domain"
	"github.com/cristianoliveira/staffview/internal/logging"
	"github.com/cristianoliveira/staffview/internal/view"
)

// ErrEmptyCommand is returned by ParseCommand for blank input.
var ErrEmptyCommand = errors.New("command is empty")

// clearValue clears a range bound in the salary and hired commands.
const clearValue = "-"

// ViewController is the part of the view controller the command line drives.
type ViewController interface {
	Spec() domain.ViewSpec
	SetSearch(term string)
	SetFilter(field domain.FilterField, value string) error
	ClearFilters()
	SetSort(field domain.SortField, order domain.SortOrder) error
	SetPage(n int)
	SetPageSize(n int) error
	FacetValues(field domain.FilterField) ([]string, error)
	Replace(spec domain.ViewSpec) error
	Result() view.Result
}

// CommandResult is what the TUI shows after a command runs.
type CommandResult struct {
	Message string
	Error   bool
	Quit    bool
}

type commandHandler struct {
	usage string
	run   func(args []string) (*CommandResult, error)
}

// CommandService parses and executes ":" commands against a ViewController.
type CommandService struct {
	controller ViewController
	logger     logging.Logger
	handlers   map[string]commandHandler
}

// NewCommandService creates a CommandService with the default command set.
func NewCommandService(controller ViewController, logger logging.Logger) *CommandService {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &CommandService{
		controller: controller,
		logger:     logger,
		handlers:   make(map[string]commandHandler),
	}
	s.registerDefaultHandlers()
	return s
}

// ParseCommand splits a command line into a lowercase name and its arguments.
func (s *CommandService) ParseCommand(command string) (name string, args []string, err error) {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return "", nil, ErrEmptyCommand
	}
	return strings.ToLower(parts[0]), parts[1:], nil
}

// Run parses and executes a command line.
func (s *CommandService) Run(command string) *CommandResult {
	name, args, err := s.ParseCommand(command)
	if err != nil {
		return &CommandResult{Error: true, Message: err.Error()}
	}
	return s.ExecuteCommand(name, args)
}

// ExecuteCommand executes a parsed command. Failures are reported in the result.
func (s *CommandService) ExecuteCommand(name string, args []string) *CommandResult {
	handler, ok := s.handlers[name]
	if !ok {
		msg := fmt.Sprintf("Unknown command: %s", name)
		s.logger.Warn("unknown command", "command", name)
		return &CommandResult{Error: true, Message: msg}
	}

	result, err := handler.run(args)
	if err != nil {
		s.logger.Warn("command failed", "command", name, "error", err.Error())
		return &CommandResult{Error: true, Message: err.Error()}
	}
	s.logger.Debug("command executed", "command", name, "args", len(args))
	return result
}

// Usage returns the usage line of a command, or "" when unknown.
func (s *CommandService) Usage(name string) string {
	return s.handlers[name].usage
}

// Suggestions returns the command names starting with partial, sorted.
func (s *CommandService) Suggestions(partial string) []string {
	partial = strings.ToLower(partial)
	var suggestions []string
	for name := range s.handlers {
		if strings.HasPrefix(name, partial) {
			suggestions = append(suggestions, name)
		}
	}
	sort.Strings(suggestions)
	return suggestions
}

func (s *CommandService) registerDefaultHandlers() {
	quit := commandHandler{usage: "q", run: s.quit}
	s.handlers["q"] = quit
	s.handlers["quit"] = quit

	s.handlers["search"] = commandHandler{usage: "search [term]", run: s.search}
	s.handlers["clear"] = commandHandler{usage: "clear", run: s.clear}
	s.handlers["filter"] = commandHandler{usage: "filter <field> [value]", run: s.filter}
	s.handlers["status"] = commandHandler{usage: "status <active|inactive|all>", run: s.status}
	s.handlers["salary"] = commandHandler{usage: "salary <min|-> [max|-]", run: s.rangeFilter(domain.FilterMinSalary, domain.FilterMaxSalary)}
	s.handlers["hired"] = commandHandler{usage: "hired <from|-> [to|-]", run: s.rangeFilter(domain.FilterHireDateFrom, domain.FilterHireDateTo)}
	s.handlers["sort"] = commandHandler{usage: "sort <name|department|position|hireDate|salary> [asc|desc]", run: s.sort}
	s.handlers["size"] = commandHandler{usage: "size <5|10|20|50>", run: s.size}
	s.handlers["page"] = commandHandler{usage: "page <n>", run: s.page}
	s.handlers["facets"] = commandHandler{usage: "facets <field>", run: s.facets}

	for name, field := range map[string]domain.FilterField{
		"department": domain.FilterDepartment,
		"gender":     domain.FilterGender,
		"education":  domain.FilterEducationLevel,
		"blood":      domain.FilterBloodType,
		"marital":    domain.FilterMaritalStatus,
	} {
		s.handlers[name] = commandHandler{usage: name + " [value]", run: s.exact(field)}
	}
}

func (s *CommandService) quit(args []string) (*CommandResult, error) {
	if len(args) > 0 {
		return nil, fmt.Errorf("invalid usage: q")
	}
	return &CommandResult{Quit: true}, nil
}

func (s *CommandService) search(args []string) (*CommandResult, error) {
	term := strings.Join(args, " ")
	s.controller.SetSearch(term)
	if term == "" {
		return &CommandResult{Message: "Search cleared"}, nil
	}
	return &CommandResult{Message: fmt.Sprintf("Search: %s", term)}, nil
}

func (s *CommandService) clear(args []string) (*CommandResult, error) {
	if len(args) > 0 {
		return nil, fmt.Errorf("invalid usage: clear")
	}
	s.controller.ClearFilters()
	return &CommandResult{Message: "Filters cleared"}, nil
}

func (s *CommandService) filter(args []string) (*CommandResult, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("invalid usage: %s", s.Usage("filter"))
	}
	field, err := domain.ParseFilterField(args[0])
	if err != nil {
		return nil, err
	}
	return s.setFilter(field, strings.Join(args[1:], " "))
}

func (s *CommandService) exact(field domain.FilterField) func(args []string) (*CommandResult, error) {
	return func(args []string) (*CommandResult, error) {
		return s.setFilter(field, strings.Join(args, " "))
	}
}

func (s *CommandService) status(args []string) (*CommandResult, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("invalid usage: %s", s.Usage("status"))
	}
	value := strings.ToLower(args[0])
	if value == "all" {
		value = ""
	}
	return s.setFilter(domain.FilterStatus, value)
}

func (s *CommandService) rangeFilter(lower, upper domain.FilterField) func(args []string) (*CommandResult, error) {
	return func(args []string) (*CommandResult, error) {
		if len(args) == 0 || len(args) > 2 {
			return nil, fmt.Errorf("invalid usage: %s %s", lower, upper)
		}
		bounds := []domain.FilterField{lower, upper}
		// Both bounds land in one spec replacement.
		spec := s.controller.Spec()
		for i, arg := range args {
			value := arg
			if value == clearValue {
				value = ""
			}
			if err := domain.ValidateFilterValue(bounds[i], value); err != nil {
				return nil, err
			}
			filter, err := spec.Filter.With(bounds[i], value)
			if err != nil {
				return nil, err
			}
			spec.Filter = filter
		}
		if err := s.controller.Replace(spec); err != nil {
			return nil, err
		}
		spec = s.controller.Spec()
		return &CommandResult{Message: fmt.Sprintf("%s: %s  %s: %s",
			lower, orAny(spec.Filter.Get(lower)), upper, orAny(spec.Filter.Get(upper)))}, nil
	}
}

func (s *CommandService) setFilter(field domain.FilterField, value string) (*CommandResult, error) {
	if err := s.controller.SetFilter(field, value); err != nil {
		return nil, err
	}
	if value == "" {
		return &CommandResult{Message: fmt.Sprintf("Filter %s cleared", field)}, nil
	}
	return &CommandResult{Message: fmt.Sprintf("Filter %s: %s", field, value)}, nil
}

func (s *CommandService) sort(args []string) (*CommandResult, error) {
	if len(args) == 0 || len(args) > 2 {
		return nil, fmt.Errorf("invalid usage: %s", s.Usage("sort"))
	}
	field, err := domain.ParseSortField(args[0])
	if err != nil {
		return nil, err
	}
	order := s.controller.Spec().Sort.Order
	if len(args) == 2 {
		if order, err = domain.ParseSortOrder(strings.ToLower(args[1])); err != nil {
			return nil, err
		}
	}
	if err := s.controller.SetSort(field, order); err != nil {
		return nil, err
	}
	return &CommandResult{Message: fmt.Sprintf("Sort: %s %s", field, order)}, nil
}

func (s *CommandService) size(args []string) (*CommandResult, error) {
	n, err := intArg(args, s.Usage("size"))
	if err != nil {
		return nil, err
	}
	if err := s.controller.SetPageSize(n); err != nil {
		return nil, err
	}
	return &CommandResult{Message: fmt.Sprintf("Page size: %d", n)}, nil
}

func (s *CommandService) page(args []string) (*CommandResult, error) {
	n, err := intArg(args, s.Usage("page"))
	if err != nil {
		return nil, err
	}
	s.controller.SetPage(n)
	return &CommandResult{Message: fmt.Sprintf("Page: %d", s.controller.Result().Pagination.CurrentPage)}, nil
}

func (s *CommandService) facets(args []string) (*CommandResult, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("invalid usage: %s", s.Usage("facets"))
	}
	field, err := domain.ParseFilterField(args[0])
	if err != nil {
		return nil, err
	}
	values, err := s.controller.FacetValues(field)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return &CommandResult{Message: fmt.Sprintf("%s: no values", field)}, nil
	}
	return &CommandResult{Message: fmt.Sprintf("%s: %s", field, strings.Join(values, ", "))}, nil
}

func intArg(args []string, usage string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("invalid usage: %s", usage)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("not a number: %s", args[0])
	}
	return n, nil
}

func orAny(v string) string {
	if v == "" {
		return "any"
	}
	return v
}
