package commands

import (
	"context"

	"burger/internal/core/domain/model/burger"
	"burger/internal/core/ports"
)

// AddIngredientCommandHandler resolves an ingredient in the catalog and appends it to a stored burger.
type AddIngredientCommandHandler struct {
	uowFactory  BurgerUoWFactory
	ingredients ports.IngredientCatalog
}

// NewAddIngredientCommandHandler creates a handler for adding ingredients.
func NewAddIngredientCommandHandler(
	uowFactory BurgerUoWFactory,
	ingredients ports.IngredientCatalog,
) AddIngredientCommandHandler {
	return AddIngredientCommandHandler{
		uowFactory:  uowFactory,
		ingredients: ingredients,
	}
}

// Handle appends the ingredient at the end of the burger's sequence.
func (h *AddIngredientCommandHandler) Handle(ctx context.Context, cmd AddIngredientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	i, err := h.ingredients.FindIngredient(ctx, cmd.IngredientName())
	if err != nil {
		return err
	}

	return updateBurger(ctx, h.uowFactory, cmd.BurgerID(), func(b *burger.Burger) error {
		return b.AddIngredient(i)
	})
}
