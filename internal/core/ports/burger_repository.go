// Package ports defines the contracts between the burger use cases and infrastructure:
// persistence of burger aggregates and read access to the bun and ingredient catalogs.
package ports

import (
	"context"

	"burger/internal/core/domain/model/burger"
	"burger/internal/core/domain/model/kernel"
)

// BurgerRepository defines the persistence contract for burger aggregates.
// Implementations store the bun and the ingredient sequence and must restore
// the ingredients in the order they were saved.
type BurgerRepository interface {
	// Add persists a new burger aggregate.
	Add(ctx context.Context, aggregate *burger.Burger) error

	// Update persists the current bun and ingredient sequence of an existing burger.
	// Returns an error if the burger does not exist.
	Update(ctx context.Context, aggregate *burger.Burger) error

	// Get retrieves a burger by its identifier.
	// Returns *errs.ObjectNotFoundError when no burger has the given id.
	Get(ctx context.Context, id kernel.UUID) (*burger.Burger, error)
}
