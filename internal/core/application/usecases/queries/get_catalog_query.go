package queries

import (
	"errors"

	"burger/internal/pkg/guard"
)

var ErrGetCatalogQueryIsNotConstructed = errors.New(
	"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
)

// GetCatalogQuery lists every bun and ingredient that can be put on a burger.
type GetCatalogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCatalogQuery creates a parameterless catalog query.
func NewGetCatalogQuery() GetCatalogQuery {
	return GetCatalogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

// GetCatalogQueryResponse holds the catalog in catalog order.
type GetCatalogQueryResponse struct {
	Buns        []BunReadModel
	Ingredients []IngredientReadModel
}
