package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/staffview/internal/colors"
	"github.com/cristianoliveira/staffview/internal/domain"
	"github.com/cristianoliveira/staffview/internal/view"
	"github.com/mattn/go-runewidth"
)

const (
	alignLeft  = "left"
	alignRight = "right"
)

// TableConfig holds configuration for table formatting.
type TableConfig struct {
	// ShowHeaders determines whether to show column headers.
	ShowHeaders bool

	// ShowFooter prints the "Showing X to Y of N entries" line.
	ShowFooter bool

	// Color enables ANSI colors for headers and status values.
	Color bool

	// HeaderColor is the color to use for headers.
	HeaderColor string

	// ColumnWidths defines the width for each column.
	ColumnWidths map[string]int

	// ColumnAlignments defines the alignment for each column (left, right).
	ColumnAlignments map[string]string
}

// DefaultTableConfig returns a default table configuration.
func DefaultTableConfig() *TableConfig {
	return &TableConfig{
		ShowHeaders: true,
		ShowFooter:  true,
		Color:       true,
		HeaderColor: colors.Blue,
		ColumnWidths: map[string]int{
			"ID":         6,
			"Name":       24,
			"Department": 14,
			"Position":   18,
			"Hired":      10,
			"Status":     8,
			"Salary":     12,
		},
		ColumnAlignments: map[string]string{
			"ID":     alignRight,
			"Salary": alignRight,
		},
	}
}

// TableColumn represents a column in a table.
type TableColumn struct {
	// Name is the column name displayed in the header.
	Name string

	// Width is the column width in terminal cells.
	Width int

	// Alignment is the text alignment (left, right).
	Alignment string

	// Extractor extracts the raw value from an employee.
	Extractor func(*domain.Employee) string
}

// TableFormatter renders employees as aligned columns.
type TableFormatter struct {
	config  *TableConfig
	columns []TableColumn
}

// NewTableFormatter creates a table formatter with the employee columns.
// A nil config uses DefaultTableConfig.
func NewTableFormatter(config *TableConfig) *TableFormatter {
	if config == nil {
		config = DefaultTableConfig()
	}
	column := func(name string, extract func(*domain.Employee) string) TableColumn {
		return TableColumn{
			Name:      name,
			Width:     config.ColumnWidths[name],
			Alignment: config.ColumnAlignments[name],
			Extractor: extract,
		}
	}
	return &TableFormatter{
		config: config,
		columns: []TableColumn{
			column("ID", func(e *domain.Employee) string { return e.ID }),
			column("Name", func(e *domain.Employee) string { return e.FullName() }),
			column("Department", func(e *domain.Employee) string { return e.Department }),
			column("Position", func(e *domain.Employee) string { return e.Position }),
			column("Hired", HireDate),
			column("Status", func(e *domain.Employee) string { return e.Status() }),
			column("Salary", Salary),
		},
	}
}

// WithColumns adds custom columns to the formatter.
func (f *TableFormatter) WithColumns(columns ...TableColumn) *TableFormatter {
	f.columns = append(f.columns, columns...)
	return f
}

// FormatView implements Formatter.
func (f *TableFormatter) FormatView(result view.Result, writer io.Writer) error {
	if len(result.Visible) == 0 {
		if _, err := fmt.Fprintln(writer, "No employees found"); err != nil {
			return err
		}
	} else {
		if f.config.ShowHeaders {
			if err := f.writeHeader(writer); err != nil {
				return err
			}
			if err := f.writeSeparator(writer); err != nil {
				return err
			}
		}
		for i := range result.Visible {
			if err := f.writeRow(&result.Visible[i], writer); err != nil {
				return err
			}
		}
	}
	if !f.config.ShowFooter {
		return nil
	}
	_, err := fmt.Fprintln(writer, Footer(result.Pagination))
	return err
}

// FormatDepartments implements Formatter.
func (f *TableFormatter) FormatDepartments(stats domain.DepartmentStats, writer io.Writer) error {
	if len(stats) == 0 {
		_, err := fmt.Fprintln(writer, "No departments found")
		return err
	}
	header := []string{
		pad("Department", 20, alignLeft),
		pad("Current", 8, alignRight),
		pad("Previous", 8, alignRight),
		pad("Growth", 8, alignRight),
	}
	if f.config.ShowHeaders {
		line := strings.Join(header, "  ")
		if f.config.Color {
			line = f.config.HeaderColor + line + colors.Reset
		}
		if _, err := fmt.Fprintln(writer, line); err != nil {
			return err
		}
	}
	for _, s := range stats.Sorted() {
		growth := pad(Growth(s.GrowthPercent), 8, alignRight)
		if f.config.Color && s.GrowthPercent > 0 {
			growth = colors.Green + growth + colors.Reset
		}
		_, err := fmt.Fprintf(writer, "%s  %s  %s  %s\n",
			pad(s.Department, 20, alignLeft),
			pad(fmt.Sprint(s.CurrentCount), 8, alignRight),
			pad(fmt.Sprint(s.PreviousCount), 8, alignRight),
			growth,
		)
		if err != nil {
			return err
		}
	}
	if !f.config.ShowFooter {
		return nil
	}
	_, err := fmt.Fprintf(writer, "%d departments, %d employees\n", len(stats), stats.Total())
	return err
}

func (f *TableFormatter) writeHeader(writer io.Writer) error {
	cells := make([]string, len(f.columns))
	for i, col := range f.columns {
		cells[i] = pad(col.Name, col.Width, col.Alignment)
	}
	line := strings.Join(cells, "  ")
	if f.config.Color {
		line = f.config.HeaderColor + line + colors.Reset
	}
	_, err := fmt.Fprintln(writer, line)
	return err
}

func (f *TableFormatter) writeSeparator(writer io.Writer) error {
	cells := make([]string, len(f.columns))
	for i, col := range f.columns {
		cells[i] = strings.Repeat("-", col.Width)
	}
	_, err := fmt.Fprintln(writer, strings.Join(cells, "  "))
	return err
}

func (f *TableFormatter) writeRow(e *domain.Employee, writer io.Writer) error {
	cells := make([]string, len(f.columns))
	for i, col := range f.columns {
		cell := pad(col.Extractor(e), col.Width, col.Alignment)
		if f.config.Color && col.Name == "Status" && !e.IsActive {
			cell = colors.Yellow + cell + colors.Reset
		}
		cells[i] = cell
	}
	_, err := fmt.Fprintln(writer, strings.TrimRight(strings.Join(cells, "  "), " "))
	return err
}

// Footer returns "Showing X to Y of N entries" with 1-based bounds, plus the
// page position when there is more than one page.
func Footer(p domain.Pagination) string {
	s := fmt.Sprintf("Showing %d to %d of %d entries", p.DisplayFrom(), p.DisplayTo(), p.TotalCount)
	if p.TotalPages > 1 {
		s += fmt.Sprintf(" (page %d of %d)", p.CurrentPage, p.TotalPages)
	}
	return s
}

// HireDate returns the calendar date part of the hire date, or the raw value if it does not parse.
func HireDate(e *domain.Employee) string {
	if t, ok := e.HireInstant(); ok {
		return t.Format("2006-01-02")
	}
	return e.HireDate
}

// Salary returns the salary with two decimals, or the raw value if it does not parse.
func Salary(e *domain.Employee) string {
	if d, ok := e.SalaryValue(); ok {
		return d.StringFixed(2)
	}
	return e.Salary
}

// Growth formats a growth percentage with an explicit sign.
func Growth(percent float64) string {
	if percent > 0 {
		return fmt.Sprintf("+%.1f%%", percent)
	}
	return fmt.Sprintf("%.1f%%", percent)
}

// pad truncates s to width cells, adding "..." when cut, and pads it to width.
func pad(s string, width int, alignment string) string {
	if width <= 0 {
		return s
	}
	tail := "..."
	if width < 4 {
		tail = ""
	}
	s = runewidth.Truncate(s, width, tail)
	if alignment == alignRight {
		return runewidth.FillLeft(s, width)
	}
	return runewidth.FillRight(s, width)
}
