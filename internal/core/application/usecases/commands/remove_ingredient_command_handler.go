package commands

import (
	"context"

	"burger/internal/core/domain/model/burger"
)

// RemoveIngredientCommandHandler removes one ingredient from a stored burger.
type RemoveIngredientCommandHandler struct {
	uowFactory BurgerUoWFactory
}

// NewRemoveIngredientCommandHandler creates a handler for ingredient removal.
func NewRemoveIngredientCommandHandler(uowFactory BurgerUoWFactory) RemoveIngredientCommandHandler {
	return RemoveIngredientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fails with *errs.ValueIsOutOfRangeError, and leaves the burger as stored,
// when the index is outside the current ingredient sequence.
func (h *RemoveIngredientCommandHandler) Handle(ctx context.Context, cmd RemoveIngredientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateBurger(ctx, h.uowFactory, cmd.BurgerID(), func(b *burger.Burger) error {
		return b.RemoveIngredient(cmd.Index())
	})
}
