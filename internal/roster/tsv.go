package roster

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/cristianoliveira/staffview/internal/domain"
)

// ErrMissingColumn indicates a TSV header without an id column.
var ErrMissingColumn = errors.New("missing column")

// tsvSetters maps header names to the employee field they fill.
var tsvSetters = map[string]func(e *domain.Employee, v string) error{
	"id":             func(e *domain.Employee, v string) error { e.ID = v; return nil },
	"firstName":      func(e *domain.Employee, v string) error { e.FirstName = v; return nil },
	"lastName":       func(e *domain.Employee, v string) error { e.LastName = v; return nil },
	"email":          func(e *domain.Employee, v string) error { e.Email = v; return nil },
	"phoneNumber":    func(e *domain.Employee, v string) error { e.PhoneNumber = v; return nil },
	"department":     func(e *domain.Employee, v string) error { e.Department = v; return nil },
	"position":       func(e *domain.Employee, v string) error { e.Position = v; return nil },
	"hireDate":       func(e *domain.Employee, v string) error { e.HireDate = v; return nil },
	"salary":         func(e *domain.Employee, v string) error { e.Salary = v; return nil },
	"gender":         func(e *domain.Employee, v string) error { e.Gender = v; return nil },
	"maritalStatus":  func(e *domain.Employee, v string) error { e.MaritalStatus = v; return nil },
	"bloodType":      func(e *domain.Employee, v string) error { e.BloodType = v; return nil },
	"educationLevel": func(e *domain.Employee, v string) error { e.EducationLevel = v; return nil },
	"nationality":    func(e *domain.Employee, v string) error { e.Nationality = v; return nil },
	"isActive": func(e *domain.Employee, v string) error {
		b, err := parseBool(v)
		e.IsActive = b
		return err
	},
}

// TSVSource reads tab-separated rows. The first line names the columns;
// unknown columns are ignored and missing ones stay empty.
type TSVSource struct {
	path string
}

// NewTSVSource creates a source for the file at path.
func NewTSVSource(path string) *TSVSource {
	return &TSVSource{path: path}
}

// Name implements Source.
func (s *TSVSource) Name() string {
	return BackendTSV + ":" + s.path
}

// Load implements Source.
func (s *TSVSource) Load(ctx context.Context) ([]domain.Employee, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, s.path)
		}
		return nil, fmt.Errorf("tsv source: open %s: %w", s.path, err)
	}
	defer f.Close()

	employees, err := DecodeTSV(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("tsv source: %s: %w", s.path, err)
	}
	return employees, nil
}

// DecodeTSV parses a header line followed by one employee per line.
// Blank lines and lines starting with # are skipped.
func DecodeTSV(ctx context.Context, r io.Reader) ([]domain.Employee, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var header []string
	employees := []domain.Employee{}
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if header == nil {
			header = make([]string, len(fields))
			for i, name := range fields {
				header[i] = strings.TrimSpace(name)
			}
			if !hasColumn(header, "id") {
				return nil, fmt.Errorf("%w: header has no id column", ErrMissingColumn)
			}
			continue
		}

		var e domain.Employee
		for i, value := range fields {
			if i >= len(header) {
				break
			}
			set, ok := tsvSetters[header[i]]
			if !ok {
				continue
			}
			if err := set(&e, unescapeField(value)); err != nil {
				return nil, fmt.Errorf("line %d column %s: %w", lineNo, header[i], err)
			}
		}
		employees = append(employees, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read tsv: %w", err)
	}
	return employees, nil
}

func hasColumn(header []string, name string) bool {
	for _, h := range header {
		if h == name {
			return true
		}
	}
	return false
}

// unescapeField reverses the \\, \t and \n escapes used to keep one record per line.
func unescapeField(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
