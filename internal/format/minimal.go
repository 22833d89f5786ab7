package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/staffview/internal/domain"
	"github.com/cristianoliveira/staffview/internal/view"
)

// MinimalFormatter prints one tab-separated line per record, for piping.
type MinimalFormatter struct{}

// NewMinimalFormatter creates a new MinimalFormatter.
func NewMinimalFormatter() *MinimalFormatter {
	return &MinimalFormatter{}
}

// FormatView implements Formatter.
func (f *MinimalFormatter) FormatView(result view.Result, writer io.Writer) error {
	for i := range result.Visible {
		e := &result.Visible[i]
		fields := []string{e.ID, e.FullName(), e.Department, e.Position, HireDate(e), e.Status(), Salary(e)}
		if _, err := fmt.Fprintln(writer, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// FormatDepartments implements Formatter.
func (f *MinimalFormatter) FormatDepartments(stats domain.DepartmentStats, writer io.Writer) error {
	for _, s := range stats.Sorted() {
		_, err := fmt.Fprintf(writer, "%s\t%d\t%d\t%.1f\n", s.Department, s.CurrentCount, s.PreviousCount, s.GrowthPercent)
		if err != nil {
			return err
		}
	}
	return nil
}
