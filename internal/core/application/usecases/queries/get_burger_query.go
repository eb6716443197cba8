// Package queries contains read operations on burgers and the catalog.
// Queries return read models shaped for the HTTP and CLI adapters.
package queries

import (
	"errors"

	"burger/internal/core/domain/model/ingredient"
	"burger/internal/core/domain/model/kernel"
	"burger/internal/pkg/guard"
)

var ErrGetBurgerQueryIsNotConstructed = errors.New(
	"GetBurgerQuery must be created via NewGetBurgerQuery constructor",
)

// GetBurgerQuery retrieves the composition of one burger.
//
// Example:
//
//	query, err := NewGetBurgerQuery(burgerID)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load burger: %w", err)
//	}
//	for _, i := range view.Ingredients {
//	    fmt.Printf("%d: %s %s\n", i.Position, i.Type.Lower(), i.Name)
//	}
type GetBurgerQuery struct {
	burgerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBurgerQuery creates a query for the given burger id.
func NewGetBurgerQuery(burgerID kernel.UUID) (GetBurgerQuery, error) {
	if err := burgerID.Validate(); err != nil {
		return GetBurgerQuery{}, err
	}

	return GetBurgerQuery{
		burgerID: burgerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBurgerQuery) Validate() error {
	return q.guard.Validate(ErrGetBurgerQueryIsNotConstructed)
}

// BurgerID returns the identifier of the requested burger.
func (q GetBurgerQuery) BurgerID() kernel.UUID {
	return q.burgerID
}

// GetBurgerQueryResponse is the read model of a burger.
// Bun and Price are nil until a bun has been set.
type GetBurgerQueryResponse struct {
	ID          kernel.UUID
	Bun         *BunReadModel
	Ingredients []IngredientReadModel
	Price       *kernel.Money
}

// BunReadModel describes a bun in read models.
type BunReadModel struct {
	Name  string
	Price kernel.Money
}

// IngredientReadModel describes one ingredient of a burger or of the catalog.
// Position is the zero-based index inside a burger and is 0 for catalog entries.
type IngredientReadModel struct {
	Position int
	Type     ingredient.Type
	Name     string
	Price    kernel.Money
}
