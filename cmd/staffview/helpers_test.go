package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cristianoliveira/staffview/internal/config"
	"github.com/cristianoliveira/staffview/internal/domain"
	"github.com/spf13/cobra"
)

// isolate points configuration at temporary directories and loads defaults.
func isolate(t *testing.T) {
	t.Helper()
	tmp := t.TempDir()
	for _, env := range os.Environ() {
		name, _, _ := strings.Cut(env, "=")
		if strings.HasPrefix(name, config.EnvPrefix) {
			t.Setenv(name, "")
			os.Unsetenv(name)
		}
	}
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	t.Setenv("NO_COLOR", "1")
	config.Load()
}

func staff(n int) []domain.Employee {
	records := make([]domain.Employee, n)
	for i := range records {
		dept := "IT"
		if i%2 == 1 {
			dept = "HR"
		}
		records[i] = domain.Employee{
			ID:         fmt.Sprint(i + 1),
			FirstName:  fmt.Sprintf("Person%02d", i+1),
			LastName:   "Doe",
			Department: dept,
			Position:   "Engineer",
			HireDate:   fmt.Sprintf("2020-01-%02d", i%28+1),
			IsActive:   i%3 != 0,
			Salary:     fmt.Sprint(1000 * (i + 1)),
		}
	}
	return records
}

func staticLoader(records []domain.Employee, err error) recordLoader {
	return func(ctx context.Context) ([]domain.Employee, error) {
		return records, err
	}
}

// execute runs c with args and returns what it wrote to stdout.
func execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}
