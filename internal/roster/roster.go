// Package roster loads employee records from read-only sources.
//
// A source is a JSON array, a TSV file with a header row, or a SQLite
// database with an employees table. Every loaded collection is checked for
// unique, non-empty IDs before it reaches the view.
package roster

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cristianoliveira/staffview/internal/config"
	"github.com/cristianoliveira/staffview/internal/domain"
	"github.com/cristianoliveira/staffview/internal/logging"
)

const (
	// BackendJSON reads a JSON array of employee objects.
	BackendJSON = "json"
	// BackendTSV reads tab-separated rows under a header of field names.
	BackendTSV = "tsv"
	// BackendSQLite reads the employees table of a SQLite database.
	BackendSQLite = "sqlite"
)

var (
	// ErrUnsupportedBackend indicates an unknown source backend name.
	ErrUnsupportedBackend = errors.New("unsupported source backend")
	// ErrEmptyPath indicates a source configured without a path.
	ErrEmptyPath = errors.New("source path cannot be empty")
	// ErrSourceNotFound indicates the source file does not exist.
	ErrSourceNotFound = errors.New("source not found")
)

// Backends lists the supported backend names.
var Backends = []string{BackendJSON, BackendTSV, BackendSQLite}

// Source produces a snapshot of employee records.
type Source interface {
	Load(ctx context.Context) ([]domain.Employee, error)
	// Name describes the source for messages, e.g. "json:/path/employees.json".
	Name() string
}

// NewFromConfig creates the source selected by source_backend and source_path.
func NewFromConfig() (Source, error) {
	return NewForBackend(config.Get("source_backend", BackendJSON), config.SourcePath())
}

// NewForBackend creates a source for the provided backend name and path.
func NewForBackend(backend, path string) (Source, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendJSON:
		return NewJSONSource(path), nil
	case BackendTSV:
		return NewTSVSource(path), nil
	case BackendSQLite:
		return NewSQLiteSource(path), nil
	default:
		return nil, fmt.Errorf("%w: %q (must be one of %s)", ErrUnsupportedBackend, backend, strings.Join(Backends, ", "))
	}
}

// BackendForPath guesses the backend from a file extension, defaulting to JSON.
func BackendForPath(path string) string {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".tsv"), strings.HasSuffix(lower, ".tab"):
		return BackendTSV
	case strings.HasSuffix(lower, ".db"), strings.HasSuffix(lower, ".sqlite"), strings.HasSuffix(lower, ".sqlite3"):
		return BackendSQLite
	default:
		return BackendJSON
	}
}

// Load reads src and validates the collection.
func Load(ctx context.Context, src Source) ([]domain.Employee, error) {
	start := time.Now()
	employees, err := src.Load(ctx)
	if err != nil {
		logging.Error("roster load failed", "source", src.Name(), "error", err)
		return nil, err
	}
	if err := domain.ValidateCollection(employees); err != nil {
		logging.Error("roster rejected", "source", src.Name(), "error", err)
		return nil, fmt.Errorf("load %s: %w", src.Name(), err)
	}
	logging.Debug("roster loaded",
		"source", src.Name(),
		"count", len(employees),
		"duration", time.Since(start).String(),
	)
	return employees, nil
}
