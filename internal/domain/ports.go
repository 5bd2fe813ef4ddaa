package domain

import (
	"context"
)

// ResourceStore defines the read-only access to the hosted resource store.
// Implementations: internal/infra/store/rest, internal/infra/postgres
type ResourceStore interface {
	// Name identifies the store driver in logs.
	Name() string

	// List returns the resources matching q ordered by creation time,
	// newest first. A zero Query returns the whole catalog.
	// Errors are always returned to the caller, never swallowed.
	List(ctx context.Context, q Query) ([]*Resource, error)

	// HealthCheck verifies the store is reachable.
	HealthCheck(ctx context.Context) error
}
