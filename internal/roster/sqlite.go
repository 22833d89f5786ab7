package roster

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/cristianoliveira/staffview/internal/domain"
	_ "modernc.org/sqlite"
)

const selectEmployeesSQL = `
SELECT id, first_name, last_name, email, phone_number, department, position,
       hire_date, is_active, salary, gender, marital_status, blood_type,
       education_level, nationality
FROM employees
ORDER BY rowid`

// SQLiteSource reads the employees table of a SQLite database opened read-only.
type SQLiteSource struct {
	path string
}

// NewSQLiteSource creates a source for the database at path.
func NewSQLiteSource(path string) *SQLiteSource {
	return &SQLiteSource{path: path}
}

// Name implements Source.
func (s *SQLiteSource) Name() string {
	return BackendSQLite + ":" + s.path
}

// dsn builds a read-only file URI. Relative paths are made absolute; otherwise
// the first path segment would be read as the URI authority.
func (s *SQLiteSource) dsn() (string, error) {
	abs, err := filepath.Abs(s.path)
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	q := url.Values{}
	q.Set("mode", "ro")
	q.Add("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Load implements Source.
func (s *SQLiteSource) Load(ctx context.Context) ([]domain.Employee, error) {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, s.path)
		}
		return nil, fmt.Errorf("sqlite source: stat %s: %w", s.path, err)
	}

	dsn, err := s.dsn()
	if err != nil {
		return nil, fmt.Errorf("sqlite source: resolve %s: %w", s.path, err)
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite source: open db: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, selectEmployeesSQL)
	if err != nil {
		return nil, fmt.Errorf("sqlite source: query employees: %w", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite source: scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite source: iterate employees: %w", err)
	}
	return employees, nil
}

// scanEmployee reads one row. Columns may be NULL; numbers in id and salary
// are kept as their text form.
func scanEmployee(rows *sql.Rows) (domain.Employee, error) {
	var (
		id, first, last, email, phone, dept, pos, hired sql.NullString
		salary, gender, marital, blood, edu, nat        sql.NullString
		active                                          sql.NullBool
	)
	if err := rows.Scan(&id, &first, &last, &email, &phone, &dept, &pos,
		&hired, &active, &salary, &gender, &marital, &blood, &edu, &nat); err != nil {
		return domain.Employee{}, err
	}
	return domain.Employee{
		ID:             id.String,
		FirstName:      first.String,
		LastName:       last.String,
		Email:          email.String,
		PhoneNumber:    phone.String,
		Department:     dept.String,
		Position:       pos.String,
		HireDate:       hired.String,
		IsActive:       active.Bool,
		Salary:         salary.String,
		Gender:         gender.String,
		MaritalStatus:  marital.String,
		BloodType:      blood.String,
		EducationLevel: edu.String,
		Nationality:    nat.String,
	}, nil
}
