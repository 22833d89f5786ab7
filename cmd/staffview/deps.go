package main

import (
	"context"

	"github.com/cristianoliveira/staffview/internal/domain"
	"github.com/cristianoliveira/staffview/internal/roster"
	"github.com/cristianoliveira/staffview/internal/tui/app"
)

// recordLoader reads a roster snapshot.
type recordLoader func(ctx context.Context) ([]domain.Employee, error)

// loadConfiguredRecords reads the source selected by configuration and flags.
func loadConfiguredRecords(ctx context.Context) ([]domain.Employee, error) {
	src, err := roster.NewFromConfig()
	if err != nil {
		return nil, err
	}
	return roster.Load(ctx, src)
}

var tuiClient = app.NewDefaultClient(nil, nil)
