package format

import (
	"encoding/json"
	"io"

	"github.com/cristianoliveira/staffview/internal/domain"
	"github.com/cristianoliveira/staffview/internal/view"
)

// JSONFormatter writes indented JSON documents.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type jsonPagination struct {
	domain.Pagination
	DisplayFrom int `json:"displayFrom"`
	DisplayTo   int `json:"displayTo"`
}

type jsonView struct {
	Records     []domain.Employee       `json:"records"`
	Pagination  jsonPagination          `json:"pagination"`
	Spec        domain.ViewSpec         `json:"spec"`
	Departments []domain.DepartmentStat `json:"departments"`
}

// FormatView implements Formatter.
func (f *JSONFormatter) FormatView(result view.Result, writer io.Writer) error {
	records := result.Visible
	if records == nil {
		records = []domain.Employee{}
	}
	return encode(writer, jsonView{
		Records: records,
		Pagination: jsonPagination{
			Pagination:  result.Pagination,
			DisplayFrom: result.Pagination.DisplayFrom(),
			DisplayTo:   result.Pagination.DisplayTo(),
		},
		Spec:        result.Spec,
		Departments: result.Departments.Sorted(),
	})
}

// FormatDepartments implements Formatter.
func (f *JSONFormatter) FormatDepartments(stats domain.DepartmentStats, writer io.Writer) error {
	return encode(writer, stats.Sorted())
}

func encode(writer io.Writer, v any) error {
	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
