package main

import (
	"context"

	"critter-calc/internal/observability"
	"critter-calc/internal/widget"
)

// initMetrics initialises all metric providers and application-specific
// metric instruments. Add new domain InitMetrics calls here as the project grows.
func initMetrics(ctx context.Context) (func(context.Context) error, error) {
	shutdown, err := observability.InitMetrics(ctx)
	if err != nil {
		return nil, err
	}

	if err := widget.InitMetrics(); err != nil {
		return nil, err
	}

	return shutdown, nil
}
