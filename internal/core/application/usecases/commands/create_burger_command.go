package commands

import (
	"errors"

	"burger/internal/core/domain/model/kernel"
	"burger/internal/pkg/guard"
)

var ErrCreateBurgerCommandIsNotConstructed = errors.New(
	"CreateBurgerCommand must be created via NewCreateBurgerCommand constructor",
)

// CreateBurgerCommand represents a request to start a new, empty burger.
//
// Example:
//
//	burgerID := kernel.NewUUID()
//	cmd, err := NewCreateBurgerCommand(burgerID)
//	if err != nil {
//	    return fmt.Errorf("invalid burger id: %w", err)
//	}
//
//	handler := NewCreateBurgerCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create burger: %w", err)
//	}
type CreateBurgerCommand struct { //nolint:recvcheck //using for validation
	burgerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateBurgerCommand creates a command for a burger with the given id.
func NewCreateBurgerCommand(burgerID kernel.UUID) (CreateBurgerCommand, error) {
	cmd := CreateBurgerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBurgerID(burgerID); err != nil {
		return CreateBurgerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBurgerCommand) Validate() error {
	return c.guard.Validate(ErrCreateBurgerCommandIsNotConstructed)
}

// BurgerID returns the identifier of the burger to create.
func (c CreateBurgerCommand) BurgerID() kernel.UUID {
	return c.burgerID
}

func (c *CreateBurgerCommand) setBurgerID(burgerID kernel.UUID) error {
	if err := burgerID.Validate(); err != nil {
		return err
	}

	c.burgerID = burgerID
	return nil
}
