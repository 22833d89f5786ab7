package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/cristianoliveira/staffview/internal/domain"
	"github.com/cristianoliveira/staffview/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func employees() []domain.Employee {
	return []domain.Employee{
		{ID: "1", FirstName: "Ada", LastName: "Lovelace", Department: "IT", Position: "Engineer", HireDate: "2020-03-15T09:30:00Z", IsActive: true, Salary: "5000"},
		{ID: "2", FirstName: "Bob", LastName: "Smith", Department: "HR", Position: "Manager", HireDate: "someday", Salary: "n/a"},
		{ID: "3", FirstName: "Maximiliano", LastName: "Montenegro-Albuquerque", Department: "IT", Position: "Analyst", IsActive: true, Salary: "4200.5"},
	}
}

func resultFor(t *testing.T, records []domain.Employee, pageSize int) view.Result {
	t.Helper()
	c := view.New(records)
	require.NoError(t, c.SetPageSize(pageSize))
	return c.Result()
}

func TestDefaultTableConfig(t *testing.T) {
	cfg := DefaultTableConfig()
	assert.True(t, cfg.ShowHeaders)
	assert.True(t, cfg.ShowFooter)
	assert.Equal(t, "\x1b[0;34m", cfg.HeaderColor)
	assert.Equal(t, 24, cfg.ColumnWidths["Name"])
	assert.Equal(t, alignRight, cfg.ColumnAlignments["Salary"])
}

func TestTableFormatterFormatView(t *testing.T) {
	cfg := DefaultTableConfig()
	cfg.Color = false
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(cfg).FormatView(resultFor(t, employees(), 10), &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "    ID  Name"))
	assert.True(t, strings.HasPrefix(lines[1], "------  ----"))
	assert.Contains(t, lines[2], "Ada Lovelace")
	assert.Contains(t, lines[2], "2020-03-15")
	assert.Contains(t, lines[2], "active")
	assert.True(t, strings.HasSuffix(lines[2], "5000.00"))
	assert.Contains(t, lines[3], "someday")
	assert.True(t, strings.HasSuffix(lines[3], "n/a"))
	assert.Contains(t, lines[4], "Maximiliano Montenegr...")
	assert.True(t, strings.HasSuffix(lines[4], "4200.50"))
	assert.Equal(t, "Showing 1 to 3 of 3 entries", lines[5])
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestTableFormatterColors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(nil).FormatView(resultFor(t, employees(), 10), &buf))
	assert.Contains(t, buf.String(), DefaultTableConfig().HeaderColor+"    ID")
	assert.Contains(t, buf.String(), "\x1b[1;33minactive")
}

func TestTableFormatterEmptyAndPaged(t *testing.T) {
	cfg := DefaultTableConfig()
	cfg.Color = false
	f := NewTableFormatter(cfg)

	var buf bytes.Buffer
	require.NoError(t, f.FormatView(resultFor(t, nil, 10), &buf))
	assert.Equal(t, "No employees found\nShowing 0 to 0 of 0 entries\n", buf.String())

	records := make([]domain.Employee, 12)
	for i := range records {
		records[i] = domain.Employee{ID: strings.Repeat("x", i+1), FirstName: "P"}
	}
	c := view.New(records)
	require.NoError(t, c.SetPageSize(5))
	c.SetPage(3)
	buf.Reset()
	require.NoError(t, f.FormatView(c.Result(), &buf))
	assert.Contains(t, buf.String(), "Showing 11 to 12 of 12 entries (page 3 of 3)")
}

func TestTableFormatterWithColumns(t *testing.T) {
	cfg := DefaultTableConfig()
	cfg.Color = false
	f := NewTableFormatter(cfg).WithColumns(TableColumn{
		Name:      "Email",
		Width:     20,
		Extractor: func(e *domain.Employee) string { return e.Email },
	})
	records := []domain.Employee{{ID: "1", FirstName: "Ada", Email: "ada@example.com"}}
	var buf bytes.Buffer
	require.NoError(t, f.FormatView(resultFor(t, records, 10), &buf))
	assert.Contains(t, buf.String(), "Email")
	assert.Contains(t, buf.String(), "ada@example.com")
}

func TestFormatDepartments(t *testing.T) {
	cfg := DefaultTableConfig()
	cfg.Color = false
	stats := domain.AggregateDepartments(append(employees(), domain.Employee{ID: "4", Department: "IT"}))

	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(cfg).FormatDepartments(stats, &buf))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Department")
	assert.True(t, strings.HasPrefix(lines[1], "HR"))
	assert.True(t, strings.HasSuffix(lines[1], "0.0%"))
	assert.True(t, strings.HasPrefix(lines[2], "IT"))
	assert.True(t, strings.HasSuffix(lines[2], "+50.0%"))
	assert.Equal(t, "2 departments, 4 employees", lines[3])

	buf.Reset()
	require.NoError(t, NewTableFormatter(cfg).FormatDepartments(domain.DepartmentStats{}, &buf))
	assert.Equal(t, "No departments found\n", buf.String())
}

func TestMinimalFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewMinimalFormatter()
	require.NoError(t, f.FormatView(resultFor(t, employees()[:1], 10), &buf))
	assert.Equal(t, "1\tAda Lovelace\tIT\tEngineer\t2020-03-15\tactive\t5000.00\n", buf.String())

	buf.Reset()
	require.NoError(t, f.FormatDepartments(domain.AggregateDepartments(employees()), &buf))
	assert.Equal(t, "HR\t1\t0\t0.0\nIT\t2\t1\t100.0\n", buf.String())
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().FormatView(resultFor(t, employees(), 5), &buf))

	var doc struct {
		Records    []domain.Employee `json:"records"`
		Pagination struct {
			TotalCount  int `json:"totalCount"`
			DisplayFrom int `json:"displayFrom"`
			DisplayTo   int `json:"displayTo"`
			PageSize    int `json:"pageSize"`
		} `json:"pagination"`
		Spec        domain.ViewSpec         `json:"spec"`
		Departments []domain.DepartmentStat `json:"departments"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Len(t, doc.Records, 3)
	assert.Equal(t, "Ada", doc.Records[0].FirstName)
	assert.Equal(t, 3, doc.Pagination.TotalCount)
	assert.Equal(t, 1, doc.Pagination.DisplayFrom)
	assert.Equal(t, 3, doc.Pagination.DisplayTo)
	assert.Equal(t, 5, doc.Pagination.PageSize)
	assert.Equal(t, domain.SortByName, doc.Spec.Sort.Field)
	require.Len(t, doc.Departments, 2)
	assert.Equal(t, "HR", doc.Departments[0].Department)
}

func TestJSONFormatterEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().FormatView(resultFor(t, nil, 10), &buf))
	assert.Contains(t, buf.String(), `"records": []`)
	assert.Contains(t, buf.String(), `"departments": []`)
}

func TestParseFormatterType(t *testing.T) {
	assert.Equal(t, FormatterTypeJSON, ParseFormatterType("json", "minimal"))
	assert.Equal(t, FormatterTypeMinimal, ParseFormatterType("table", "minimal"))
	assert.Equal(t, FormatterTypeTable, ParseFormatterType("table", "default"))
	assert.Equal(t, FormatterTypeTable, ParseFormatterType("", ""))

	assert.IsType(t, &JSONFormatter{}, NewFormatter(FormatterTypeJSON, true))
	assert.IsType(t, &MinimalFormatter{}, NewFormatter(FormatterTypeMinimal, true))
	tf, ok := NewFormatter(FormatterTypeTable, false).(*TableFormatter)
	require.True(t, ok)
	assert.False(t, tf.config.Color)
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "+11.1%", Growth(11.1))
	assert.Equal(t, "0.0%", Growth(0))
	assert.Equal(t, "ab  ", pad("ab", 4, alignLeft))
	assert.Equal(t, "  ab", pad("ab", 4, alignRight))
	assert.Equal(t, "abcd...", pad("abcdefghij", 7, alignLeft))
	assert.Equal(t, "abc", pad("abcdef", 3, alignLeft))
	assert.Equal(t, "日本...", pad("日本語テキスト", 7, alignLeft))
}
