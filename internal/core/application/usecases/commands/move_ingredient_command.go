package commands

import (
	"errors"

	"burger/internal/core/domain/model/kernel"
	"burger/internal/pkg/guard"
)

var ErrMoveIngredientCommandIsNotConstructed = errors.New(
	"MoveIngredientCommand must be created via NewMoveIngredientCommand constructor",
)

// MoveIngredientCommand asks to relocate the ingredient at From to position To.
type MoveIngredientCommand struct { //nolint:recvcheck //using for validation
	burgerID kernel.UUID
	from     int
	to       int

	guard guard.ConstructorGuard
}

// NewMoveIngredientCommand creates a move command. Positions are checked by the handler.
func NewMoveIngredientCommand(burgerID kernel.UUID, from, to int) (MoveIngredientCommand, error) {
	cmd := MoveIngredientCommand{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBurgerID(burgerID); err != nil {
		return MoveIngredientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MoveIngredientCommand) Validate() error {
	return c.guard.Validate(ErrMoveIngredientCommandIsNotConstructed)
}

// BurgerID returns the identifier of the burger to change.
func (c MoveIngredientCommand) BurgerID() kernel.UUID {
	return c.burgerID
}

// From returns the current position of the ingredient.
func (c MoveIngredientCommand) From() int {
	return c.from
}

// To returns the target position of the ingredient.
func (c MoveIngredientCommand) To() int {
	return c.to
}

func (c *MoveIngredientCommand) setBurgerID(burgerID kernel.UUID) error {
	if err := burgerID.Validate(); err != nil {
		return err
	}

	c.burgerID = burgerID
	return nil
}
