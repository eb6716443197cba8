package commands

import (
	"errors"

	"burger/internal/core/domain/model/kernel"
	"burger/internal/pkg/guard"
)

var ErrRemoveIngredientCommandIsNotConstructed = errors.New(
	"RemoveIngredientCommand must be created via NewRemoveIngredientCommand constructor",
)

// RemoveIngredientCommand asks to remove the ingredient at a zero-based position.
// The position is checked against the stored burger by the handler, not here.
type RemoveIngredientCommand struct { //nolint:recvcheck //using for validation
	burgerID kernel.UUID
	index    int

	guard guard.ConstructorGuard
}

// NewRemoveIngredientCommand creates a removal command.
func NewRemoveIngredientCommand(burgerID kernel.UUID, index int) (RemoveIngredientCommand, error) {
	cmd := RemoveIngredientCommand{
		index: index,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBurgerID(burgerID); err != nil {
		return RemoveIngredientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveIngredientCommand) Validate() error {
	return c.guard.Validate(ErrRemoveIngredientCommandIsNotConstructed)
}

// BurgerID returns the identifier of the burger to change.
func (c RemoveIngredientCommand) BurgerID() kernel.UUID {
	return c.burgerID
}

// Index returns the position of the ingredient to remove.
func (c RemoveIngredientCommand) Index() int {
	return c.index
}

func (c *RemoveIngredientCommand) setBurgerID(burgerID kernel.UUID) error {
	if err := burgerID.Validate(); err != nil {
		return err
	}

	c.burgerID = burgerID
	return nil
}
