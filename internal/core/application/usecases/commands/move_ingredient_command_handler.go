package commands

import (
	"context"

	"burger/internal/core/domain/model/burger"
)

// MoveIngredientCommandHandler reorders the ingredients of a stored burger.
type MoveIngredientCommandHandler struct {
	uowFactory BurgerUoWFactory
}

// NewMoveIngredientCommandHandler creates a handler for ingredient moves.
func NewMoveIngredientCommandHandler(uowFactory BurgerUoWFactory) MoveIngredientCommandHandler {
	return MoveIngredientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves one ingredient and saves the new order.
func (h *MoveIngredientCommandHandler) Handle(ctx context.Context, cmd MoveIngredientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateBurger(ctx, h.uowFactory, cmd.BurgerID(), func(b *burger.Burger) error {
		return b.MoveIngredient(cmd.From(), cmd.To())
	})
}
