package commands

import (
	"errors"
	"strings"

	"burger/internal/core/domain/model/kernel"
	"burger/internal/pkg/errs"
	"burger/internal/pkg/guard"
)

var ErrAddIngredientCommandIsNotConstructed = errors.New(
	"AddIngredientCommand must be created via NewAddIngredientCommand constructor",
)

// AddIngredientCommand asks to append the named catalog ingredient to a burger.
type AddIngredientCommand struct { //nolint:recvcheck //using for validation
	burgerID       kernel.UUID
	ingredientName string

	guard guard.ConstructorGuard
}

// NewAddIngredientCommand validates the burger id and requires a non-blank ingredient name.
func NewAddIngredientCommand(burgerID kernel.UUID, ingredientName string) (AddIngredientCommand, error) {
	cmd := AddIngredientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBurgerID(burgerID),
		cmd.setIngredientName(ingredientName),
	); err != nil {
		return AddIngredientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddIngredientCommand) Validate() error {
	return c.guard.Validate(ErrAddIngredientCommandIsNotConstructed)
}

// BurgerID returns the identifier of the burger to change.
func (c AddIngredientCommand) BurgerID() kernel.UUID {
	return c.burgerID
}

// IngredientName returns the catalog name of the ingredient.
func (c AddIngredientCommand) IngredientName() string {
	return c.ingredientName
}

func (c *AddIngredientCommand) setBurgerID(burgerID kernel.UUID) error {
	if err := burgerID.Validate(); err != nil {
		return err
	}

	c.burgerID = burgerID
	return nil
}

func (c *AddIngredientCommand) setIngredientName(ingredientName string) error {
	if strings.TrimSpace(ingredientName) == "" {
		return errs.NewValueIsRequiredError("ingredient name")
	}

	c.ingredientName = ingredientName
	return nil
}
