// Package format renders roster views and department statistics for the CLI.
package format

import (
	"io"

	"github.com/cristianoliveira/staffview/internal/domain"
	"github.com/cristianoliveira/staffview/internal/view"
)

// Formatter renders a view result and department statistics.
type Formatter interface {
	// FormatView writes the visible page and its pagination summary.
	FormatView(result view.Result, writer io.Writer) error

	// FormatDepartments writes per-department headcount trends.
	FormatDepartments(stats domain.DepartmentStats, writer io.Writer) error
}

// FormatterType represents the type of formatter to use.
type FormatterType string

const (
	// FormatterTypeTable renders aligned columns with a header and a footer.
	FormatterTypeTable FormatterType = "table"

	// FormatterTypeMinimal renders tab-separated rows without header, footer or color.
	FormatterTypeMinimal FormatterType = "minimal"

	// FormatterTypeJSON renders the result as indented JSON.
	FormatterTypeJSON FormatterType = "json"
)

// ParseFormatterType maps the output_format and table_format settings to a
// formatter type. Unknown values fall back to the table formatter.
func ParseFormatterType(output, table string) FormatterType {
	switch {
	case output == string(FormatterTypeJSON):
		return FormatterTypeJSON
	case table == string(FormatterTypeMinimal):
		return FormatterTypeMinimal
	default:
		return FormatterTypeTable
	}
}

// NewFormatter creates a new formatter of the specified type.
// color only affects the table formatter.
func NewFormatter(formatterType FormatterType, color bool) Formatter {
	switch formatterType {
	case FormatterTypeJSON:
		return NewJSONFormatter()
	case FormatterTypeMinimal:
		return NewMinimalFormatter()
	default:
		cfg := DefaultTableConfig()
		cfg.Color = color
		return NewTableFormatter(cfg)
	}
}
