package roster

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/cristianoliveira/staffview/internal/domain"
)

// JSONSource reads a JSON array of employee objects, or an object holding
// that array under "employees".
type JSONSource struct {
	path string
}

// NewJSONSource creates a source for the file at path.
func NewJSONSource(path string) *JSONSource {
	return &JSONSource{path: path}
}

// Name implements Source.
func (s *JSONSource) Name() string {
	return BackendJSON + ":" + s.path
}

// Load implements Source.
func (s *JSONSource) Load(ctx context.Context) ([]domain.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, s.path)
		}
		return nil, fmt.Errorf("json source: read %s: %w", s.path, err)
	}
	employees, err := DecodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("json source: %s: %w", s.path, err)
	}
	return employees, nil
}

// jsonEmployee mirrors domain.Employee but accepts numbers where upstream
// exports sometimes emit them (id, salary) and a string or bool for isActive.
type jsonEmployee struct {
	ID             flexString `json:"id"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	PhoneNumber    string     `json:"phoneNumber"`
	Department     string     `json:"department"`
	Position       string     `json:"position"`
	HireDate       string     `json:"hireDate"`
	IsActive       flexBool   `json:"isActive"`
	Salary         flexString `json:"salary"`
	Gender         string     `json:"gender"`
	MaritalStatus  string     `json:"maritalStatus"`
	BloodType      string     `json:"bloodType"`
	EducationLevel string     `json:"educationLevel"`
	Nationality    string     `json:"nationality"`
}

func (j jsonEmployee) employee() domain.Employee {
	return domain.Employee{
		ID:             string(j.ID),
		FirstName:      j.FirstName,
		LastName:       j.LastName,
		Email:          j.Email,
		PhoneNumber:    j.PhoneNumber,
		Department:     j.Department,
		Position:       j.Position,
		HireDate:       j.HireDate,
		IsActive:       bool(j.IsActive),
		Salary:         string(j.Salary),
		Gender:         j.Gender,
		MaritalStatus:  j.MaritalStatus,
		BloodType:      j.BloodType,
		EducationLevel: j.EducationLevel,
		Nationality:    j.Nationality,
	}
}

// DecodeJSON parses a roster document.
func DecodeJSON(data []byte) ([]domain.Employee, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []domain.Employee{}, nil
	}

	var rows []jsonEmployee
	if trimmed[0] == '{' {
		var doc struct {
			Employees []jsonEmployee `json:"employees"`
		}
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("decode roster: %w", err)
		}
		rows = doc.Employees
	} else if err := json.Unmarshal(trimmed, &rows); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}

	employees := make([]domain.Employee, len(rows))
	for i, row := range rows {
		employees[i] = row.employee()
	}
	return employees, nil
}

// flexString accepts a JSON string or number. Numbers keep their literal text.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = flexString(n.String())
	return nil
}

// flexBool accepts a JSON bool or a string such as "true", "1" or "no".
type flexBool bool

func (f *flexBool) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "null":
		*f = false
		return nil
	case "true", "false":
		*f = string(data) == "true"
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("expected bool, got %s", data)
	}
	b, err := parseBool(s)
	if err != nil {
		return err
	}
	*f = flexBool(b)
	return nil
}

// parseBool accepts the same spellings as the config layer.
func parseBool(s string) (bool, error) {
	switch s {
	case "", "0", "false", "FALSE", "False", "no", "off", "inactive":
		return false, nil
	case "1", "true", "TRUE", "True", "yes", "on", "active":
		return true, nil
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}
