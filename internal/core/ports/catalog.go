package ports

import (
	"context"

	"burger/internal/core/domain/model/bun"
	"burger/internal/core/domain/model/ingredient"
)

// BunCatalog lists the buns a customer can choose from.
type BunCatalog interface {
	// AvailableBuns returns every bun on offer, in catalog order.
	AvailableBuns(ctx context.Context) ([]bun.Bun, error)

	// FindBun returns the bun with the given name.
	// Returns *errs.ObjectNotFoundError when the catalog has no such bun.
	FindBun(ctx context.Context, name string) (bun.Bun, error)
}

// IngredientCatalog lists the sauces and fillings a customer can choose from.
type IngredientCatalog interface {
	// AvailableIngredients returns every ingredient on offer, in catalog order.
	AvailableIngredients(ctx context.Context) ([]ingredient.Ingredient, error)

	// FindIngredient returns the ingredient with the given name.
	// Returns *errs.ObjectNotFoundError when the catalog has no such ingredient.
	FindIngredient(ctx context.Context, name string) (ingredient.Ingredient, error)
}
