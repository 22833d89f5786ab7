// Package render draws the pieces of the roster TUI as plain strings.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/staffview/internal/colors"
	"github.com/cristianoliveira/staffview/internal/domain"
	"github.com/cristianoliveira/staffview/internal/format"
	"github.com/mattn/go-runewidth"
)

const (
	idWidth              = 6
	departmentWidth      = 14
	positionWidth        = 18
	hiredWidth           = 10
	statusWidth          = 8
	salaryWidth          = 12
	spacesBetweenColumns = 12
	minNameWidth         = 12
	defaultNameWidth     = 24
)

var (
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Red)))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Green)))
)

// FooterState defines the inputs needed to render footer help text.
type FooterState struct {
	SearchMode  bool
	CommandMode bool
	InputView   string
	Width       int
}

// RowState defines the inputs needed to render an employee row.
type RowState struct {
	Employee domain.Employee
	Width    int
	Selected bool
}

// SummaryState defines the inputs for the line under the table.
type SummaryState struct {
	Pagination domain.Pagination
	Spec       domain.ViewSpec
	SearchMode string
}

// StatusState is a transient message shown above the footer.
type StatusState struct {
	Text  string
	Error bool
}

// Header renders the table header.
func Header(width int) string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))
	return headerStyle.Render(truncate(columns(nameWidth(width),
		"ID", "NAME", "DEPARTMENT", "POSITION", "HIRED", "STATUS", "SALARY"), width))
}

// Row renders a single employee row.
func Row(state RowState) string {
	e := state.Employee
	rowStyle := lipgloss.NewStyle()
	if state.Selected {
		rowStyle = rowStyle.Background(lipgloss.Color(ansiColorNumber(colors.Blue))).Foreground(lipgloss.Color("0"))
	} else if !e.IsActive {
		rowStyle = rowStyle.Foreground(lipgloss.Color("241"))
	}
	return rowStyle.Render(truncate(columns(nameWidth(state.Width),
		e.ID, e.FullName(), e.Department, e.Position, format.HireDate(&e), e.Status(), format.Salary(&e)), state.Width))
}

// Empty renders the placeholder shown when no record matches.
func Empty() string {
	return dimStyle.Render("No employees found")
}

// Summary renders pagination and the active view settings.
func Summary(state SummaryState) string {
	p := state.Pagination
	parts := []string{format.Footer(p)}
	parts = append(parts, fmt.Sprintf("sort: %s %s", state.Spec.Sort.Field, state.Spec.Sort.Order))
	parts = append(parts, fmt.Sprintf("size: %d", p.PageSize))
	if state.SearchMode != "" {
		parts = append(parts, "search: "+state.SearchMode)
	}
	line := strings.Join(parts, "  ·  ")
	if filters := ActiveFilters(state.Spec.Filter); filters != "" {
		line += "\n" + dimStyle.Render("filters: "+filters)
	}
	return line
}

// ActiveFilters lists the non-empty filter rules as field=value pairs.
func ActiveFilters(f domain.Filter) string {
	var parts []string
	for _, field := range domain.FilterFields {
		if v := f.Get(field); v != "" {
			parts = append(parts, fmt.Sprintf("%s=%q", field, v))
		}
	}
	return strings.Join(parts, " ")
}

// Status renders a transient info or error message.
func Status(state StatusState) string {
	if state.Text == "" {
		return ""
	}
	if state.Error {
		return errorStyle.Render("Error: " + state.Text)
	}
	return infoStyle.Render(state.Text)
}

// Departments renders the headcount panel.
func Departments(stats domain.DepartmentStats, width int) string {
	if len(stats) == 0 {
		return dimStyle.Render("No departments")
	}
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Departments"))
	for _, s := range stats.Sorted() {
		line := fmt.Sprintf("%s %4d  (prev %d, %s)",
			runewidth.FillRight(runewidth.Truncate(s.Department, 20, "..."), 20),
			s.CurrentCount, s.PreviousCount, format.Growth(s.GrowthPercent))
		b.WriteString("\n")
		b.WriteString(truncate(line, width))
	}
	return b.String()
}

// Details renders every field of one employee.
func Details(e domain.Employee) string {
	label := lipgloss.NewStyle().Bold(true).Width(16)
	rows := [][2]string{
		{"ID", e.ID},
		{"Name", e.FullName()},
		{"Email", e.Email},
		{"Phone", e.PhoneNumber},
		{"Department", e.Department},
		{"Position", e.Position},
		{"Hired", format.HireDate(&e)},
		{"Status", e.Status()},
		{"Salary", format.Salary(&e)},
		{"Gender", e.Gender},
		{"Marital status", e.MaritalStatus},
		{"Blood type", e.BloodType},
		{"Education", e.EducationLevel},
		{"Nationality", e.Nationality},
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = label.Render(r[0]) + r[1]
	}
	return strings.Join(lines, "\n")
}

// Footer renders the footer with help text, or the active input line.
func Footer(state FooterState) string {
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	if state.SearchMode || state.CommandMode {
		help := helpStyle.Render("Enter: apply  |  ESC: cancel")
		return state.InputView + "\n" + help
	}

	help := []string{
		"j/k: move",
		"n/p: page",
		"/: search",
		":: command",
		"s: sort field",
		"o: order",
		"+: page size",
		"d: departments",
		"Enter: details",
		"q: quit",
	}
	return helpStyle.Render(truncate(strings.Join(help, "  |  "), state.Width))
}

func nameWidth(width int) int {
	if width <= 0 {
		return defaultNameWidth
	}
	fixed := idWidth + departmentWidth + positionWidth + hiredWidth + statusWidth + salaryWidth + spacesBetweenColumns
	if w := width - fixed; w > minNameWidth {
		return w
	}
	return minNameWidth
}

func columns(nameW int, id, name, dept, pos, hired, status, salary string) string {
	cell := func(s string, w int) string {
		return runewidth.FillRight(runewidth.Truncate(s, w, "..."), w)
	}
	return strings.Join([]string{
		runewidth.FillLeft(runewidth.Truncate(id, idWidth, ""), idWidth),
		cell(name, nameW),
		cell(dept, departmentWidth),
		cell(pos, positionWidth),
		cell(hired, hiredWidth),
		cell(status, statusWidth),
		runewidth.FillLeft(runewidth.Truncate(salary, salaryWidth, ""), salaryWidth),
	}, "  ")
}

func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "")
}

// ansiColorNumber extracts the color number from an ANSI escape sequence.
// Example: "\033[0;34m" -> "34"
func ansiColorNumber(ansi string) string {
	lastSemicolon := strings.LastIndex(ansi, ";")
	if lastSemicolon == -1 || len(ansi) < 2 {
		return ""
	}
	return ansi[lastSemicolon+1 : len(ansi)-1]
}
